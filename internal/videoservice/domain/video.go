package domain

// Video is a single stored video record.
type Video struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Views int64  `json:"views"`
	Likes int64  `json:"likes"`
}

// VideoFields is the set of mutable attributes supplied by a caller.
// A nil slot means the field was not supplied.
type VideoFields struct {
	Name  *string
	Views *int64
	Likes *int64
}

// IsEmpty reports whether no field was supplied.
func (f VideoFields) IsEmpty() bool {
	return f.Name == nil && f.Views == nil && f.Likes == nil
}

// NewVideo builds a record from a create field set. Callers must run
// ValidateCreate first; missing slots panic.
func NewVideo(id int64, f VideoFields) *Video {
	return &Video{
		ID:    id,
		Name:  *f.Name,
		Views: *f.Views,
		Likes: *f.Likes,
	}
}

// Apply overwrites each supplied attribute with its same-named value.
func (v *Video) Apply(f VideoFields) {
	if f.Name != nil {
		v.Name = *f.Name
	}
	if f.Views != nil {
		v.Views = *f.Views
	}
	if f.Likes != nil {
		v.Likes = *f.Likes
	}
}

// Clone returns a copy that shares no state with v.
func (v *Video) Clone() *Video {
	c := *v
	return &c
}
