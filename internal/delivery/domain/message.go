package domain

// Link tokens substituted in template bodies.
const (
	// TokenSurveyLink becomes an anchor wrapping the participant's survey URL.
	TokenSurveyLink = "[survey-link]"
	// TokenSurveyURL becomes the bare survey URL.
	TokenSurveyURL = "[survey-url]"
)

// MessageTemplate is the content an entry is sent with.
type MessageTemplate struct {
	ID        int64
	ProjectID int64
	Sender    string
	Subject   string
	Body      string
}

// Message is what the mail transport sends. Recipients are plaintext addresses.
type Message struct {
	To        []string
	CC        []string
	BCC       []string
	From      string
	Subject   string
	Body      string
	ProjectID int64
}

// OutboundEmail is an ad-hoc send observed by the outbound intercept. Each
// recipient field may hold a ';' or ',' separated list.
type OutboundEmail struct {
	To        string
	CC        string
	BCC       string
	From      string
	Subject   string
	Body      string
	ProjectID int64
}

// RunStats are the aggregate counts of one processor run.
type RunStats struct {
	Claimed int
	Sent    int
	Failed  int
}
