package blog

// RedirectKind names the read view a mutation sends the actor to.
type RedirectKind int

const (
	RedirectNone RedirectKind = iota
	RedirectFeed
	RedirectPostDetail
	RedirectProfile
)

// Redirect is a navigation target; turning it into a URL is the transport's job.
type Redirect struct {
	Kind     RedirectKind
	PostID   int
	Username string
}

func ToFeed() Redirect {
	return Redirect{Kind: RedirectFeed}
}

func ToPost(postID int) Redirect {
	return Redirect{Kind: RedirectPostDetail, PostID: postID}
}

func ToProfile(username string) Redirect {
	return Redirect{Kind: RedirectProfile, Username: username}
}

// Result is the outcome of a single mutation. Success and SoftDenial carry a Redirect;
// NotFound, Unauthenticated, ValidationFailure and StoreFailure carry Err.
type Result[T any] struct {
	Outcome  Outcome
	Value    T
	Redirect Redirect
	Err      error
}

// Fields returns the field errors of a validation failure, nil otherwise.
func (r Result[T]) Fields() FieldErrors {
	if vErr, ok := r.Err.(*ValidationError); ok {
		return vErr.Fields
	}

	return nil
}

func succeed[T any](value T, to Redirect) Result[T] {
	return Result[T]{Outcome: OutcomeSuccess, Value: value, Redirect: to}
}

// softDeny resolves a failed ownership check as plain navigation to the object's view.
func softDeny[T any](to Redirect) Result[T] {
	return Result[T]{Outcome: OutcomeSoftDenial, Redirect: to}
}

func fail[T any](err error) Result[T] {
	return Result[T]{Outcome: Classify(err), Err: err}
}
