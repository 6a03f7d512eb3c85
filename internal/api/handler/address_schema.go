package handler

import "github.com/fcamara/user-address-api/internal/core/ports"

type addressRequest struct {
	ZipCode    string `json:"zip_code"   validate:"required"`
	Number     string `json:"number"     validate:"required"`
	Complement string `json:"complement"`
}

type addressResponse struct {
	ID         string `json:"id"`
	ZipCode    string `json:"zip_code"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	UserID     string `json:"user_id"`
}

type listAddressesResponse struct {
	Data       []addressResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toAddressResponse(r *ports.AddressResult) addressResponse {
	return addressResponse{
		ID:         r.ID,
		ZipCode:    r.ZipCode,
		Number:     r.Number,
		Complement: r.Complement,
		Street:     r.Street,
		District:   r.District,
		City:       r.City,
		State:      r.State,
		UserID:     r.UserID,
	}
}

func toListAddressesResponse(result *ports.ListAddressesResult) listAddressesResponse {
	items := make([]addressResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toAddressResponse(&result.Items[i]))
	}
	return listAddressesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Size:       result.Size,
			TotalPages: result.TotalPages,
		},
	}
}
