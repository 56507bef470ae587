package dto

type UpdateMirrorSettingsRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}

type MirrorSettingsResponse struct {
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

func (r *MirrorSettingsResponse) FromURL(url string) {
	r.URL = url
	r.Enabled = url != ""
}
