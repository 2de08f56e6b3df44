package domain

// Branch is one physical storefront location.
type Branch struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Phone   []string `json:"phone"`
}

// City groups branches; the "all" pseudo-city has no branches of its own.
type City struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Branches []Branch `json:"branches"`
}
