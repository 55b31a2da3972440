package overlay

// focusFrameBudget is how many animation-frame ticks the controller keeps
// re-asserting focus after opening. The contract is "focus settles inside
// the panel within the budget", not "focus is inside synchronously".
const focusFrameBudget = 8

// Controller is the checkout overlay state machine: two states (closed,
// open), idempotent transitions, hash deep-linking and focus management.
// It is the single writer of the overlay's DOM state and the URL fragment.
type Controller struct {
	doc     Document
	overlay Element
	panel   Element

	open        bool
	returnFocus Element
}

type CloseOptions struct {
	// KeepFocus suppresses returning focus to the pre-open element.
	KeepFocus bool
	// Silent suppresses the aria-live announcement.
	Silent bool
}

func NewController(doc Document) *Controller {
	return &Controller{
		doc:     doc,
		overlay: doc.ElementByMarker(MarkerOverlay),
		panel:   doc.ElementByMarker(MarkerPanel),
	}
}

func (c *Controller) IsOpen() bool {
	return c.open
}

// Open transitions closed -> open. Calling it while already open is a no-op:
// no DOM mutation, no second focus move.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.returnFocus = c.doc.ActiveElement()

	c.overlay.RemoveAttribute("hidden")
	c.overlay.SetAttribute("aria-hidden", "false")
	c.overlay.SetAttribute("data-open", "true")
	c.overlay.AddClass(classOpen)
	c.doc.SetRootAttribute(AttrScrollLock, "true")

	if c.doc.Fragment() != FragmentCheckout {
		c.doc.PushFragment(FragmentCheckout)
	}

	c.settleFocus(focusFrameBudget)
}

// Close transitions open -> closed. Closing an already-closed overlay is a
// no-op, not an error.
func (c *Controller) Close(opts CloseOptions) {
	if !c.open {
		return
	}
	c.open = false

	c.overlay.SetAttribute("hidden", "")
	c.overlay.SetAttribute("aria-hidden", "true")
	c.overlay.SetAttribute("data-open", "false")
	c.overlay.RemoveClass(classOpen)
	c.doc.RemoveRootAttribute(AttrScrollLock)

	if c.doc.Fragment() == FragmentCheckout {
		// replace, not push, so closing never pollutes back-button history
		c.doc.ReplaceFragment("")
	}

	if !opts.Silent {
		c.announce("Checkout closed")
	}
	if !opts.KeepFocus && c.returnFocus != nil {
		c.returnFocus.Focus()
	}
	c.returnFocus = nil
}

// SyncFragment is the page-load and hashchange entry point: the fragment is
// the source of truth for whether the overlay should be open.
func (c *Controller) SyncFragment() {
	if c.doc.Fragment() == FragmentCheckout {
		c.Open()
	} else {
		// navigation-driven close: the user moved on, do not yank focus back
		c.Close(CloseOptions{KeepFocus: true, Silent: true})
	}
}

func (c *Controller) HandleClick(target Element) {
	if target == nil {
		return
	}
	switch {
	case target.HasMarker(MarkerOpen):
		c.Open()
	case target.HasMarker(MarkerClose):
		c.Close(CloseOptions{})
	case target.HasMarker(MarkerBackdrop):
		c.Close(CloseOptions{})
	}
}

func (c *Controller) HandleKeydown(key string) {
	if key == "Escape" {
		c.Close(CloseOptions{})
	}
}

// ShowReceipt swaps the form for the receipt view inside the still-open
// overlay and releases the scroll lock. This is a separate transition from
// Close: the receipt stays visible.
func (c *Controller) ShowReceipt() {
	if !c.open {
		return
	}
	if form := c.doc.ElementByMarker(MarkerForm); form != nil {
		form.SetAttribute("hidden", "")
	}
	if receipt := c.doc.ElementByMarker(MarkerReceipt); receipt != nil {
		receipt.RemoveAttribute("hidden")
	}
	c.doc.RemoveRootAttribute(AttrScrollLock)
	c.announce("Thank you! Your donation went through.")
}

// ShowError surfaces a payment failure without closing the overlay: the
// message is announced and focus stays inside the panel so the user can
// retry.
func (c *Controller) ShowError(message string) {
	if !c.open {
		return
	}
	if errEl := c.doc.ElementByMarker(MarkerError); errEl != nil {
		errEl.SetText(message)
		errEl.RemoveAttribute("hidden")
	}
	c.announce(message)
	c.settleFocus(focusFrameBudget)
}

// ShowFieldError puts an inline validation message next to the amount field.
func (c *Controller) ShowFieldError(message string) {
	if !c.open {
		return
	}
	if fieldEl := c.doc.ElementByMarker(MarkerAmountError); fieldEl != nil {
		fieldEl.SetText(message)
		fieldEl.RemoveAttribute("hidden")
	}
	c.announce(message)
	c.settleFocus(focusFrameBudget)
}

// settleFocus places focus on the panel's first focusable control, then
// keeps re-checking across frames because competing scripts may steal focus
// milliseconds after open() returns.
func (c *Controller) settleFocus(framesLeft int) {
	if target := c.doc.FirstFocusable(c.panel); target != nil {
		target.Focus()
	}
	if framesLeft <= 0 {
		return
	}
	c.doc.RequestFrame(func() {
		if !c.open {
			return
		}
		if active := c.doc.ActiveElement(); active != nil && c.doc.Contains(c.panel, active) {
			return
		}
		c.settleFocus(framesLeft - 1)
	})
}

func (c *Controller) announce(text string) {
	if status := c.doc.ElementByMarker(MarkerStatus); status != nil {
		status.SetText(text)
	}
}
