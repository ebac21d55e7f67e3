package sms

import "foodbank/internal/entities"

type sendRequest struct {
	To   string `json:"to"`
	From string `json:"from"`
	Text string `json:"text"`
	Test bool   `json:"test"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
}

type balanceResponse struct {
	Credits *float64 `json:"credits"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func toDomain(resp sendResponse) *entities.SmsSendResult {
	return &entities.SmsSendResult{MessageID: resp.MessageID}
}
