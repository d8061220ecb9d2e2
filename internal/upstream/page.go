package upstream

import "encoding/json"

// Page is the single normalized shape for every list response. Upstream
// list endpoints are duck-typed: some return a bare JSON array, some an
// object with items and pagination metadata. Normalizing here means no
// screen ever branches on shape.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

type pageEnvelope[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// decodePage normalizes either response shape. A bare array carries no
// pagination metadata and is treated as a single full page. For envelopes,
// totalPages is derived from total/limit when the server omits it, and the
// reported page is clamped into [1, totalPages].
func decodePage[T any](payload json.RawMessage, reqPage, reqLimit int) (Page[T], error) {
	if reqPage < 1 {
		reqPage = 1
	}
	if reqLimit < 1 {
		reqLimit = 10
	}

	if len(payload) == 0 {
		return Page[T]{Items: []T{}, Page: 1, Limit: reqLimit, Total: 0, TotalPages: 1}, nil
	}

	if isArray(payload) {
		var items []T
		if err := json.Unmarshal(payload, &items); err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Items: items, Page: 1, Limit: reqLimit, Total: len(items), TotalPages: 1}, nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(payload, &env); err != nil {
		return Page[T]{}, err
	}
	p := Page[T]{
		Items:      env.Items,
		Page:       env.Page,
		Limit:      env.Limit,
		Total:      env.Total,
		TotalPages: env.TotalPages,
	}
	if p.Items == nil {
		p.Items = []T{}
	}
	if p.Limit <= 0 {
		p.Limit = reqLimit
	}
	if p.Total <= 0 {
		p.Total = len(p.Items)
	}
	if p.TotalPages <= 0 {
		p.TotalPages = (p.Total + p.Limit - 1) / p.Limit
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	if p.Page <= 0 {
		p.Page = reqPage
	}
	if p.Page > p.TotalPages {
		p.Page = p.TotalPages
	}
	return p, nil
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
