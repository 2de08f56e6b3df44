package http

import (
	"net/http"

	"github.com/ranchers-app/storefront/internal/branches"
	"github.com/ranchers-app/storefront/internal/domain"
)

type BranchHandler struct {
	directory *branches.Directory
}

func NewBranchHandler(directory *branches.Directory) *BranchHandler {
	return &BranchHandler{directory: directory}
}

type BranchDTO struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Phone   []string `json:"phone"`
	MapLink string   `json:"map_link"`
}

func (h *BranchHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities := h.directory.Cities()

	type cityDTO struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]cityDTO, len(cities))
	for i, city := range cities {
		out[i] = cityDTO{ID: city.ID, Name: city.Name}
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *BranchHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	cityID := r.URL.Query().Get("city")
	if cityID == "" {
		cityID = branches.CityAll
	}

	respondJSON(w, http.StatusOK, toBranchDTOs(h.directory.Branches(cityID)))
}

func toBranchDTOs(items []domain.Branch) []BranchDTO {
	out := make([]BranchDTO, len(items))
	for i, b := range items {
		out[i] = BranchDTO{
			Name:    b.Name,
			Address: b.Address,
			Phone:   b.Phone,
			MapLink: branches.MapLink(b.Address),
		}
	}
	return out
}
