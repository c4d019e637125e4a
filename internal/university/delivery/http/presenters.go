package http

import "nextstep/internal/university"

// --- Request DTOs ---

type detailsReq struct {
	Name string `json:"name" binding:"required"`
}

func (r detailsReq) toInput() university.DetailsInput {
	return university.DetailsInput{Name: r.Name}
}

// --- Response DTOs ---

type detailsResp struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Cached  bool   `json:"cached"`
}

func (h *handler) newDetailsResp(output university.DetailsOutput) detailsResp {
	return detailsResp{
		Name:    output.Name,
		Details: output.Details,
		Cached:  output.Cached,
	}
}
