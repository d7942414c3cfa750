package luigi

import (
	"math"
	"slices"
	"strings"

	"github.com/bnema/goluigi/internal/callback"
	"github.com/bnema/goluigi/pkg/luigi/native"
)

// Element is implemented by every widget wrapper in this package and only by them:
// an Element can therefore only come out of a successful constructor.
type Element interface {
	// Handle returns the native handle. It stays a valid address only while the
	// element and all of its ancestors are alive.
	Handle() native.Handle
	Kind() Kind
	// Refresh asks the toolkit to re-layout and repaint the element.
	Refresh() error
	// Destroy destroys the element and its whole subtree natively. Every wrapper in
	// the subtree reports ErrDestroyed afterwards.
	Destroy() error

	node() *node
}

// node is the wrapper-side mirror of one native tree entry.
type node struct {
	env       *Environment
	handle    native.Handle
	kind      Kind
	parent    *node
	children  []*node
	destroyed bool

	// slot is the detachable callback (button click, table item handler).
	slot callback.ID
	// pinned slots cannot be detached natively (shortcuts, menu items); they live
	// until their owner is destroyed or the environment terminates.
	pinned []callback.ID
}

// live reports whether the native handle behind n is still valid.
func (n *node) live() error {
	if n == nil || n.env == nil || n.handle == 0 {
		return ErrInvalidParent
	}
	if n.env.state == StateTerminated {
		return ErrTerminated
	}
	for p := n; p != nil; p = p.parent {
		if p.destroyed {
			return ErrDestroyed
		}
	}
	return nil
}

func (n *node) toolkit() native.Toolkit {
	return n.env.toolkit
}

// replaceSlot swaps the detachable callback. The old trampoline is detached natively
// before its closure is released, so the toolkit can never reach a released slot.
func (n *node) replaceSlot(attach func(native.Context), register func() callback.ID) {
	if n.slot != 0 {
		attach(0)
		n.env.slots.Release(n.slot)
		n.env.log.Debug().
			Stringer("widget", n.kind).
			Uint64("slot", uint64(n.slot)).
			Msg("released callback slot")
		n.slot = 0
	}
	if register == nil {
		return
	}
	n.slot = register()
	attach(n.slot)
}

func (n *node) pin(id callback.ID) {
	n.pinned = append(n.pinned, id)
}

// detachSlots detaches and releases every callback in the subtree rooted at n.
func (n *node) detachSlots() {
	n.releaseSlots(true)
}

// releaseSlots releases every callback in the subtree rooted at n. With detach unset
// no native call is made, for handles the toolkit is already tearing down.
func (n *node) releaseSlots(detach bool) {
	for _, child := range n.children {
		child.releaseSlots(detach)
	}
	if n.slot != 0 {
		if detach {
			switch n.kind {
			case KindButton:
				n.toolkit().ButtonSetInvoke(n.handle, 0)
			case KindTable:
				n.toolkit().TableSetHandler(n.handle, 0)
			}
		}
		n.env.slots.Release(n.slot)
		n.slot = 0
	}
	for _, id := range n.pinned {
		n.env.slots.Release(id)
	}
	n.pinned = nil
}

// forget drops the subtree rooted at n from the handle index, so a late native
// destroy notice for any of its handles is ignored.
func (n *node) forget() {
	for _, child := range n.children {
		child.forget()
	}
	if n.env.nodes[n.handle] == n {
		delete(n.env.nodes, n.handle)
	}
}

// unlink removes n from its parent, or from the roots.
func (n *node) unlink() {
	if n.parent != nil {
		n.parent.children = slices.DeleteFunc(n.parent.children, func(c *node) bool { return c == n })
	} else {
		n.env.roots = slices.DeleteFunc(n.env.roots, func(c *node) bool { return c == n })
	}
}

func (n *node) destroy() error {
	if err := n.live(); err != nil {
		return err
	}
	n.detachSlots()
	n.forget()
	n.toolkit().ElementDestroy(n.handle)
	n.destroyed = true
	n.unlink()
	n.env.log.Debug().Stringer("widget", n.kind).Msg("destroyed element subtree")
	return nil
}

// destroyedNatively handles a destruction the toolkit started on its own, such as a
// closed MDI child or window. The handles are still valid but about to be freed.
func (n *node) destroyedNatively() {
	n.releaseSlots(false)
	n.forget()
	n.destroyed = true
	n.unlink()
}

// element carries the methods every wrapper shares.
type element struct {
	n *node
}

func (e element) Handle() native.Handle { return e.n.handle }
func (e element) Kind() Kind            { return e.n.kind }
func (e element) node() *node           { return e.n }

func (e element) Refresh() error {
	if err := e.n.live(); err != nil {
		return err
	}
	e.n.toolkit().ElementRefresh(e.n.handle)
	return nil
}

func (e element) Destroy() error {
	return e.n.destroy()
}

// parentNode resolves a parent argument to a live node.
func parentNode(parent Element) (*node, error) {
	if parent == nil {
		return nil, ErrInvalidParent
	}
	p := parent.node()
	if err := p.live(); err != nil {
		return nil, err
	}
	// A menu only holds the items the toolkit builds for it.
	if p.kind == KindMenu {
		return nil, ErrInvalidParent
	}
	return p, nil
}

// adopt wraps a freshly created handle, or reports a CreationError for a null one.
func (env *Environment) adopt(parent *node, kind Kind, h native.Handle) (*node, error) {
	if h == 0 {
		env.log.Warn().Stringer("widget", kind).Msg("native constructor returned null")
		return nil, &CreationError{Kind: kind}
	}
	n := &node{env: env, handle: h, kind: kind, parent: parent}
	if parent != nil {
		parent.children = append(parent.children, n)
	} else {
		env.roots = append(env.roots, n)
	}
	env.nodes[h] = n
	env.log.Trace().Stringer("widget", kind).Uint64("handle", uint64(h)).Msg("created element")
	return n, nil
}

// cCount clamps a size or count to what a C int holds. Negative values become 0.
func cCount(v int) int {
	return min(max(v, 0), math.MaxInt32)
}

// cInt clamps a signed coordinate to the C int range.
func cInt(v int) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

// cString rejects strings the toolkit receives NUL-terminated.
func cString(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", ErrInvalidString
	}
	return s, nil
}
