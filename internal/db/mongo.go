package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const connectTimeout = 10 * time.Second

// ErrNoDatabase: la URI no trae /<database>.
var ErrNoDatabase = errors.New("mongo uri sin nombre de base de datos")

// Mongo es la conexión única del proceso. Quien la abre la cierra.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// DatabaseName saca el nombre de la DB del path de la URI (protocol://host:port/db).
func DatabaseName(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("uri inválida: %w", err)
	}
	if cs.Database == "" {
		return "", ErrNoDatabase
	}
	return cs.Database, nil
}

func Connect(ctx context.Context, uri string) (*Mongo, error) {
	name, err := DatabaseName(uri)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectando: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping falló: %w", err)
	}

	log.Printf("[mongo] conectado a %s / DB=%s\n", uri, name)
	return &Mongo{Client: client, DB: client.Database(name)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("desconectando: %w", err)
	}
	log.Println("[mongo] conexión cerrada")
	return nil
}
