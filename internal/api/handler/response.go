package handler

// envelope is the canonical success shape for all API responses:
// {"status":"success","data":{…}} with an optional results count on lists.
type envelope struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data"`
}

func success(data any) envelope {
	return envelope{Status: "success", Data: data}
}

func successList(results int, data any) envelope {
	return envelope{Status: "success", Results: &results, Data: data}
}

// messageResponse is the bare error shape: {"message":"…"}.
type messageResponse struct {
	Message string `json:"message"`
}
