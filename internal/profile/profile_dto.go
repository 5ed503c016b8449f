package profile

type ProfileResponse struct {
	Name string `json:"name"`
}
