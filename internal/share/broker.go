// Package share brokers "share this design" over a native share capability
// with a manual fallback menu of deep links and link copying.
package share

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrShareCancelled is returned by a NativeSharer when the user dismissed the
// share sheet. Cancellation is not a failure and never triggers the fallback
// menu.
var ErrShareCancelled = errors.New("share: cancelled by user")

// NativeSharer is the host environment's share capability, when present.
type NativeSharer interface {
	// Share presents the design with an attached watermarked image.
	Share(ctx context.Context, title, link string, imageJPEG []byte) error
}

// Clipboard is the host environment's copy capability.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// MenuEntry is one option of the manual fallback menu.
type MenuEntry struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
	// CopyLink marks the entry handled by CopyLink rather than a deep link.
	CopyLink bool `json:"copy_link,omitempty"`
}

// Result reports how a share attempt concluded.
type Result struct {
	Shared    bool        `json:"shared"`
	Cancelled bool        `json:"cancelled"`
	Fallback  []MenuEntry `json:"fallback,omitempty"`
}

type Broker struct {
	native    NativeSharer // nil when the environment has no native share
	clipboard Clipboard
	shareText string
}

func NewBroker(native NativeSharer, clipboard Clipboard) *Broker {
	return &Broker{
		native:    native,
		clipboard: clipboard,
		shareText: "Check out my Roomlift redesign!",
	}
}

// Share attempts the native path first. User cancellation is absorbed
// silently; a genuine native failure, or the absence of the capability, yields
// the manual fallback menu.
func (b *Broker) Share(ctx context.Context, designLink string, imageJPEG []byte) Result {
	if b.native != nil {
		err := b.native.Share(ctx, b.shareText, designLink, imageJPEG)
		if err == nil {
			return Result{Shared: true}
		}
		if errors.Is(err, ErrShareCancelled) {
			return Result{Cancelled: true}
		}
	}
	return Result{Fallback: b.FallbackMenu(designLink)}
}

// FallbackMenu builds the manual share options for a design link.
func (b *Broker) FallbackMenu(designLink string) []MenuEntry {
	text := url.QueryEscape(b.shareText + " " + designLink)
	return []MenuEntry{
		{Label: "WhatsApp", URL: "https://wa.me/?text=" + text},
		{Label: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(designLink)},
		{Label: "X", URL: "https://twitter.com/intent/tweet?text=" + text},
		{Label: "Copy link", CopyLink: true},
	}
}

// CopyLink copies the design link via the clipboard capability. Its outcome is
// independent of any native share attempt.
func (b *Broker) CopyLink(ctx context.Context, designLink string) error {
	if b.clipboard == nil {
		return fmt.Errorf("share: no clipboard capability available")
	}
	if err := b.clipboard.Copy(ctx, designLink); err != nil {
		return fmt.Errorf("share: failed to copy link: %w", err)
	}
	return nil
}
