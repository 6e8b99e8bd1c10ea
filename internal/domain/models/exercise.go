package models

// ExerciseItem is a single exercise search result. Fields the provider leaves
// out are emitted as null.
type ExerciseItem struct {
	Name      *string `json:"name"`
	Target    *string `json:"target"`
	Equipment *string `json:"equipment"`
	BodyPart  *string `json:"bodyPart"`
	GifURL    *string `json:"gifUrl,omitempty"`
}

// ExerciseSearchResponse wraps exercise search results.
type ExerciseSearchResponse struct {
	Items []ExerciseItem `json:"items"`
}

// ExerciseSearchQuery is the optional query string of the exercise search route.
type ExerciseSearchQuery struct {
	Q string `form:"q"`
}
