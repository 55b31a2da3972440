package overlay

// Marker attributes the controller owns. One marker maps to exactly one
// semantic action: the backdrop and the explicit close button carry distinct
// markers so two scripts can never fight over who owns the close trigger.
const (
	MarkerOverlay  = "data-ff-checkout"
	MarkerPanel    = "data-ff-checkout-panel"
	MarkerOpen     = "data-ff-open-checkout"
	MarkerClose    = "data-ff-close-checkout"
	MarkerBackdrop = "data-ff-checkout-backdrop"

	MarkerForm        = "data-ff-checkout-form"
	MarkerReceipt     = "data-ff-checkout-receipt"
	MarkerError       = "data-ff-checkout-error"
	MarkerAmountError = "data-ff-amount-error"
	// aria-live region for announcements
	MarkerStatus = "data-ff-checkout-status"

	// set on the document root while the overlay holds the page scroll
	AttrScrollLock = "data-ff-scroll-locked"

	FragmentCheckout = "checkout"

	classOpen = "is-open"
)

// Element is a weak handle onto a DOM node. The controller only mutates
// attributes, classes, text and focus; it never owns an element's lifecycle.
type Element interface {
	SetAttribute(name, value string)
	RemoveAttribute(name string)
	Attribute(name string) (string, bool)
	AddClass(name string)
	RemoveClass(name string)
	HasMarker(marker string) bool
	SetText(text string)
	Focus()
}

// Document is the browser surface the controller needs: marker lookup,
// focus, URL fragment read/write with push/replace semantics, and
// animation-frame scheduling.
type Document interface {
	ElementByMarker(marker string) Element
	FirstFocusable(container Element) Element
	ActiveElement() Element
	Contains(container, el Element) bool

	Fragment() string
	PushFragment(fragment string)
	ReplaceFragment(fragment string)

	SetRootAttribute(name, value string)
	RemoveRootAttribute(name string)

	RequestFrame(fn func())
}
