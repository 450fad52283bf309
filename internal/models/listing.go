package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ListingsCollection = "listings"
	ReviewsCollection  = "reviews"

	// OwnerField es la referencia al User dueño del listing.
	OwnerField = "owner"
)

// Listing es un documento del dataset tal cual, con los campos en el orden del archivo.
// El schema (title, price, location, ...) no lo valida este paquete.
type Listing bson.D

// Review se borra en el reset; nunca se crea desde acá.
type Review bson.M

func (l Listing) Get(key string) (any, bool) {
	for _, e := range l {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (l Listing) Owner() (any, bool) {
	return l.Get(OwnerField)
}

// Clone copia el primer nivel. Los valores anidados se comparten.
func (l Listing) Clone() Listing {
	out := make(Listing, len(l), len(l)+1)
	copy(out, l)
	return out
}

// With devuelve una copia con key = value. Si el campo existe se pisa en su lugar,
// si no se agrega al final.
func (l Listing) With(key string, value any) Listing {
	out := l.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, bson.E{Key: key, Value: value})
}

// OwnerRef convierte el id configurado en la referencia que se guarda.
// Un hex de 24 caracteres se guarda como ObjectID (el _id del User);
// cualquier otro valor queda como string opaco.
func OwnerRef(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}
