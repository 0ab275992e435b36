package get_available_slots

import (
	"fmt"
	"net/url"
	"strconv"

	getAvailableSlots "github.com/sweetnarcisse/SN-BookingService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date          string         `json:"date"`
	Slots         []SlotResponse `json:"slots"`
	TotalPrice    float64        `json:"totalPrice"`
	BlockedReason string         `json:"blockedReason,omitempty"`
}

// SlotResponse модель доступного отправления
type SlotResponse struct {
	Time      string `json:"time"` // "10:20"
	BoatID    int64  `json:"boatId"`
	BoatName  string `json:"boatName"`
	SeatsLeft int    `json:"seatsLeft"`
}

// ParseQuery разбирает query-параметры запроса доступности
func ParseQuery(query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		Date:     query.Get("date"),
		Language: query.Get("language"),
	}

	var err error
	if req.Adults, err = intParam(query, "adults"); err != nil {
		return nil, err
	}
	if req.Children, err = intParam(query, "children"); err != nil {
		return nil, err
	}
	if req.Babies, err = intParam(query, "babies"); err != nil {
		return nil, err
	}

	if raw := query.Get("private"); raw != "" {
		req.Private, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parameter private must be a boolean")
		}
	}

	return req, nil
}

func intParam(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s must be an integer", name)
	}
	return value, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:          resp.Date,
		Slots:         make([]SlotResponse, 0, len(resp.Slots)),
		TotalPrice:    resp.TotalPrice,
		BlockedReason: resp.BlockedReason,
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Time:      s.Time.String(),
			BoatID:    s.BoatID,
			BoatName:  s.BoatName,
			SeatsLeft: s.SeatsLeft,
		})
	}
	return out
}
