package response

import "troca_medidores/internal/domain/entities"

type MotiveResponse struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

func FromMotives(motives []entities.ClosureMotive) []MotiveResponse {
	out := make([]MotiveResponse, 0, len(motives))
	for _, m := range motives {
		out = append(out, MotiveResponse{Code: m.Code, Label: m.Label})
	}
	return out
}
