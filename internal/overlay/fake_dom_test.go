package overlay

// In-memory stand-in for the browser surface. The page it builds mirrors the
// checkout markup: a trigger button outside the overlay, the overlay with a
// backdrop and a panel, and the panel's form controls.

type fakeElement struct {
	name    string
	doc     *fakeDocument
	parent  *fakeElement
	attrs   map[string]string
	classes map[string]bool
	markers map[string]bool
	text    string
}

func (e *fakeElement) SetAttribute(name, value string) { e.attrs[name] = value }
func (e *fakeElement) RemoveAttribute(name string)     { delete(e.attrs, name) }

func (e *fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) AddClass(name string)         { e.classes[name] = true }
func (e *fakeElement) RemoveClass(name string)      { delete(e.classes, name) }
func (e *fakeElement) HasMarker(marker string) bool { return e.markers[marker] }
func (e *fakeElement) SetText(text string)          { e.text = text }

func (e *fakeElement) Focus() {
	e.doc.active = e
	e.doc.focusLog = append(e.doc.focusLog, e.name)
}

type fakeDocument struct {
	byMarker       map[string]*fakeElement
	firstFocusable *fakeElement
	active         *fakeElement
	rootAttrs      map[string]string

	fragment string
	pushes   []string
	replaces []string

	frames   []func()
	focusLog []string
}

func (d *fakeDocument) ElementByMarker(marker string) Element {
	if el, ok := d.byMarker[marker]; ok {
		return el
	}
	return nil
}

func (d *fakeDocument) FirstFocusable(container Element) Element {
	if d.firstFocusable == nil {
		return nil
	}
	return d.firstFocusable
}

func (d *fakeDocument) ActiveElement() Element {
	if d.active == nil {
		return nil
	}
	return d.active
}

func (d *fakeDocument) Contains(container, el Element) bool {
	target, ok := el.(*fakeElement)
	if !ok {
		return false
	}
	for node := target; node != nil; node = node.parent {
		if Element(node) == container {
			return true
		}
	}
	return false
}

func (d *fakeDocument) Fragment() string { return d.fragment }

func (d *fakeDocument) PushFragment(fragment string) {
	d.fragment = fragment
	d.pushes = append(d.pushes, fragment)
}

func (d *fakeDocument) ReplaceFragment(fragment string) {
	d.fragment = fragment
	d.replaces = append(d.replaces, fragment)
}

func (d *fakeDocument) SetRootAttribute(name, value string) { d.rootAttrs[name] = value }
func (d *fakeDocument) RemoveRootAttribute(name string)     { delete(d.rootAttrs, name) }

func (d *fakeDocument) RequestFrame(fn func()) { d.frames = append(d.frames, fn) }

// runFrame runs the oldest pending frame callback. Returns false when none
// are pending.
func (d *fakeDocument) runFrame() bool {
	if len(d.frames) == 0 {
		return false
	}
	fn := d.frames[0]
	d.frames = d.frames[1:]
	fn()
	return true
}

func (d *fakeDocument) runAllFrames() int {
	ran := 0
	for d.runFrame() {
		ran++
		if ran > 100 {
			panic("frame loop did not terminate")
		}
	}
	return ran
}

type fakePage struct {
	doc      *fakeDocument
	overlay  *fakeElement
	panel    *fakeElement
	input    *fakeElement
	trigger  *fakeElement
	closeBt  *fakeElement
	backdrop *fakeElement
	form     *fakeElement
	receipt  *fakeElement
	errEl    *fakeElement
	fieldEl  *fakeElement
	status   *fakeElement
}

func (d *fakeDocument) newElement(name string, parent *fakeElement, markers ...string) *fakeElement {
	el := &fakeElement{
		name:    name,
		doc:     d,
		parent:  parent,
		attrs:   map[string]string{},
		classes: map[string]bool{},
		markers: map[string]bool{},
	}
	for _, m := range markers {
		el.markers[m] = true
		d.byMarker[m] = el
	}
	return el
}

func newFakePage() *fakePage {
	doc := &fakeDocument{
		byMarker:  map[string]*fakeElement{},
		rootAttrs: map[string]string{},
	}

	trigger := doc.newElement("trigger", nil, MarkerOpen)
	overlay := doc.newElement("overlay", nil, MarkerOverlay)
	backdrop := doc.newElement("backdrop", overlay, MarkerBackdrop)
	panel := doc.newElement("panel", overlay, MarkerPanel)
	input := doc.newElement("amount-input", panel)
	closeBt := doc.newElement("close-button", panel, MarkerClose)
	form := doc.newElement("form", panel, MarkerForm)
	receipt := doc.newElement("receipt", panel, MarkerReceipt)
	errEl := doc.newElement("error", panel, MarkerError)
	fieldEl := doc.newElement("amount-error", panel, MarkerAmountError)
	status := doc.newElement("status", panel, MarkerStatus)

	// closed-state markup, as served
	overlay.attrs["hidden"] = ""
	overlay.attrs["aria-hidden"] = "true"
	overlay.attrs["data-open"] = "false"
	receipt.attrs["hidden"] = ""
	errEl.attrs["hidden"] = ""
	fieldEl.attrs["hidden"] = ""

	doc.firstFocusable = input
	doc.active = trigger

	return &fakePage{
		doc:      doc,
		overlay:  overlay,
		panel:    panel,
		input:    input,
		trigger:  trigger,
		closeBt:  closeBt,
		backdrop: backdrop,
		form:     form,
		receipt:  receipt,
		errEl:    errEl,
		fieldEl:  fieldEl,
		status:   status,
	}
}

func snapshotAttrs(el *fakeElement) map[string]string {
	out := map[string]string{}
	for k, v := range el.attrs {
		out[k] = v
	}
	return out
}
