package surface

// Offscreen is an in-memory drawable. It binds a context like a real
// canvas does but draws nothing; headless hosts and tests use it.
type Offscreen struct {
	id     string
	width  int
	height int

	// Fail, when set, is returned by GetContext
	Fail error
	// NoContext makes GetContext return a nil context without error
	NoContext bool

	bound bool
	ctx   *OffscreenContext

	Acquisitions  int
	Invalidations int
}

// OffscreenContext records the attributes an Offscreen was bound with
type OffscreenContext struct {
	Attrs ContextAttributes
}

// NewOffscreen creates an offscreen drawable
func NewOffscreen(id string, width, height int) *Offscreen {
	return &Offscreen{id: id, width: width, height: height}
}

func (o *Offscreen) ID() string { return o.id }

func (o *Offscreen) Size() (int, int) { return o.width, o.height }

// SetSize resizes the drawable
func (o *Offscreen) SetSize(width, height int) {
	o.width, o.height = width, height
}

func (o *Offscreen) GetContext(attrs ContextAttributes) (Context, error) {
	o.Acquisitions++
	if o.Fail != nil {
		return nil, o.Fail
	}
	if o.NoContext {
		return nil, nil
	}
	if o.bound {
		return nil, ErrAlreadyBound
	}
	o.bound = true
	o.ctx = &OffscreenContext{Attrs: attrs}
	return o.ctx, nil
}

func (o *Offscreen) BoundContext() (Context, bool) {
	if !o.bound {
		return nil, false
	}
	return o.ctx, true
}

func (o *Offscreen) Invalidate() { o.Invalidations++ }

func (o *Offscreen) Release() {
	o.bound = false
	o.ctx = nil
}

// IsBound reports whether a context is currently bound
func (o *Offscreen) IsBound() bool { return o.bound }
