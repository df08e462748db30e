package ir

// SetComment attaches text to key. The comment is rendered after the value
// of key; a key need not be present to carry a comment.
func (o *Object) SetComment(key, text string) {
	if o.comments == nil {
		o.comments = map[string]string{}
	}
	o.comments[key] = text
}

func (o *Object) Comment(key string) (string, bool) {
	c, ok := o.comments[key]
	return c, ok
}

// RemoveComment removes the comment of key, if any.
func (o *Object) RemoveComment(key string) {
	delete(o.comments, key)
}

func (o *Object) ClearComments() {
	o.comments = nil
}

// HasComments reports whether any key carries a comment.
func (o *Object) HasComments() bool {
	return len(o.comments) != 0
}
