package entity

import "time"

// User representa una cuenta registrada. El email es único y se guarda normalizado.
type User struct {
	ID           string
	Email        string
	PasswordHash string  // argon2id, nunca plano; no sale de la capa de aplicación
	FullName     *string // opcional
	IsActive     bool
	CreatedAt    time.Time
}
