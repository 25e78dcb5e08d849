package domain

// GoldExample is one question/answer pair in the retrieval evaluation set.
// ExpectedDoc is matched case-insensitively as a substring of each hit's
// title and source.
type GoldExample struct {
	Question    string `json:"question"`
	ExpectedDoc string `json:"expected_doc"`
}

// EvalReport aggregates retrieval quality over a gold set.
type EvalReport struct {
	// Total is the number of evaluated questions.
	Total int

	// K is the retrieval depth used for HitAtK.
	K int

	// HitAt1 is the fraction of questions whose expected document
	// matched the top-ranked hit.
	HitAt1 float64

	// HitAtK is the fraction matched anywhere in the top K hits.
	HitAtK float64
}
