// Package uuid wraps github.com/google/uuid so that UUIDs can be bound
// directly from query and URI parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
//
// An empty parameter binds to the Nil UUID so that optional query
// parameters can be left out.
func (u *UUID) UnmarshalParam(param string) error {
	if param == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(param)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
