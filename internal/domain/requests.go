package domain

// ReportRequest is the submission payload for a new sighting. PhotoBase64
// optionally carries a JPEG to store; the served public URL ends up in
// imagen_url.
type ReportRequest struct {
	Name        string   `json:"nombre" validate:"required,min=1,max=120"`
	Contact     string   `json:"contacto" validate:"required,min=5,max=40"`
	Description string   `json:"descripcion" validate:"max=2000"`
	Latitude    *float64 `json:"latitud" validate:"omitempty,lat"`
	Longitude   *float64 `json:"longitud" validate:"omitempty,lng"`
	PhotoBase64 string   `json:"imagen_base64,omitempty"`
	DeviceID    string   `json:"device_id,omitempty"`
}

type LocationUpdateRequest struct {
	DeviceID string  `json:"device_id" validate:"required"`
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
}

// LocationUpdateResponse lists the sighting IDs newly alerted by this
// position update. Filtered updates (below the minimum movement distance)
// return an empty list.
type LocationUpdateResponse struct {
	Notified []string `json:"notified"`
}
