package api

// Common request/response structures

// GenerateIllustrationsRequest defines the payload for the illustration
// endpoint. Text must be present but may be an empty string; empty lesson
// text is valid input to the pipeline.
type GenerateIllustrationsRequest struct {
	Text *string `json:"text" validate:"required"`
}

// ImageResultResponse is one image record in the illustration response.
type ImageResultResponse struct {
	Link        string `json:"link"`
	DisplayLink string `json:"display_link"`
	Title       string `json:"title"`
}

// IllustrationResponse defines the successful response for the illustration
// endpoint. Results are ordered by search term, then by the order the search
// capability returned them in.
type IllustrationResponse struct {
	SearchTerms []string              `json:"search_terms"`
	Results     []ImageResultResponse `json:"results"`
}
