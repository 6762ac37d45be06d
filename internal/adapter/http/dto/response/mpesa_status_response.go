package response

import "storefront/internal/domain/entities"

type MpesaStatusResponse struct {
	Status string `json:"status"`
}

func FromMpesaStatus(status entities.MpesaStatus) MpesaStatusResponse {
	return MpesaStatusResponse{Status: string(status)}
}
