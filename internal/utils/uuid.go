package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace ids. Version 7 ids are time-ordered, which
// keeps log lines of one session close together when sorted.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
