package models

import (
	"fmt"
	"time"
)

type Type string

// Types is the closed set of elemental types a pokemon may carry.
var Types = []Type{
	"fire", "water", "grass", "electric", "ice", "fighting",
	"poison", "ground", "flying", "psychic", "bug", "rock",
	"ghost", "dragon", "dark", "steel", "fairy",
}

func (t Type) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

type Names struct {
	French   string `json:"french,omitempty"`
	English  string `json:"english,omitempty"`
	Japanese string `json:"japanese,omitempty"`
	Chinese  string `json:"chinese,omitempty"`
}

type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// Pokemon is a catalog entry. ExternalID is the public pokedex number used in
// routes and in user lists; ID is the storage key.
type Pokemon struct {
	ID         string    `gorm:"primaryKey;size:36" json:"_id"`
	ExternalID int       `gorm:"uniqueIndex;not null" json:"id"`
	Name       Names     `gorm:"serializer:json" json:"name"`
	Types      []Type    `gorm:"serializer:json" json:"types"`
	Image      string    `gorm:"size:512" json:"image,omitempty"`
	Stats      Stats     `gorm:"serializer:json" json:"stats"`
	Evolutions []int     `gorm:"serializer:json" json:"evolutions"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate checks the constraints the store enforces before any write.
func (p *Pokemon) Validate() error {
	if p.ExternalID <= 0 {
		return fmt.Errorf("id is required and must be positive")
	}
	for _, t := range p.Types {
		if !t.Valid() {
			return fmt.Errorf("type %q is not a valid pokemon type", t)
		}
	}
	return nil
}

// Normalize replaces nil slices so empty lists serialize as [].
func (p *Pokemon) Normalize() {
	if p.Types == nil {
		p.Types = []Type{}
	}
	if p.Evolutions == nil {
		p.Evolutions = []int{}
	}
}
