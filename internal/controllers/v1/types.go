package v1

import (
	ol_uuid "github.com/outlay-app/backend/internal/uuid"
)

type URIID struct {
	ID ol_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
