package service

import "wanderlust-seed/internal/models"

// AttachOwner devuelve una copia del dataset con "owner" seteado en cada listing.
// Si ya traía owner se pisa en su lugar. No modifica el slice de entrada y mantiene el orden.
func AttachOwner(listings []models.Listing, owner any) []models.Listing {
	out := make([]models.Listing, len(listings))
	for i, l := range listings {
		out[i] = l.With(models.OwnerField, owner)
	}
	return out
}
