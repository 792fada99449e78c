package publish

// CloneError reports a failed clone of the content repository.
type CloneError struct {
	Repo string
	Err  error
}

func (e *CloneError) Error() string {
	return "cloning " + RedactURL(e.Repo) + ": " + e.Err.Error()
}

func (e *CloneError) Unwrap() error { return e.Err }

// SlugExistsError reports that the post directory for today's slug already
// exists in the cloned repository. Running twice on the same calendar day
// produces this; it is a hard stop, not an overwrite.
type SlugExistsError struct {
	Path string
}

func (e *SlugExistsError) Error() string {
	return "post directory " + e.Path + " already exists; refusing to overwrite"
}

// PublishError reports a failed step of the publish sequence after a
// successful clone.
type PublishError struct {
	Step string
	Err  error
}

func (e *PublishError) Error() string {
	return "publish step " + e.Step + ": " + e.Err.Error()
}

func (e *PublishError) Unwrap() error { return e.Err }
