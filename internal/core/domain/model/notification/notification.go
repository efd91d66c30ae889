package notification

import (
	"errors"
	"maps"
	"regexp"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/principal"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/plaintext"
)

var (
	// ErrEmailIsRequired is returned when a recipient carries no email address.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("recipient email")
	// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

var requestReference = regexp.MustCompile(`Request #([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})`)

// Recipient is a resolved addressee: an email and, when known, the principal owning it.
type Recipient struct {
	Email       string
	PrincipalID *kernel.UUID
}

// NewRecipient trims the email and copies the optional principal id.
func NewRecipient(email string, principalID *kernel.UUID) Recipient {
	r := Recipient{Email: strings.TrimSpace(email)}
	if principalID != nil {
		id := *principalID
		r.PrincipalID = &id
	}
	return r
}

// RecipientOf addresses a principal by its own email.
func RecipientOf(p principal.Principal) Recipient {
	id := p.ID()
	return NewRecipient(p.Email(), &id)
}

// Content is what a notification says and what it is about.
type Content struct {
	Kind             Kind
	Title            string
	Body             string
	RelatedRequestID *kernel.UUID
	Metadata         map[string]string
}

// Notification is an in-app message for one recipient.
type Notification struct {
	id               kernel.UUID
	principalID      *kernel.UUID
	email            string
	kind             Kind
	title            string
	body             string
	relatedRequestID *kernel.UUID
	metadata         map[string]string
	isRead           bool
	createdAt        time.Time

	isConstructed bool
}

// NewNotification creates an unread notification. Title and body are reduced to plain text.
func NewNotification(id kernel.UUID, recipient Recipient, content Content, now time.Time) (*Notification, error) {
	n := &Notification{
		kind:          content.Kind,
		title:         plaintext.Strip(content.Title),
		body:          plaintext.Strip(content.Body),
		metadata:      maps.Clone(content.Metadata),
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipient(recipient),
		n.setRelatedRequest(content.RelatedRequestID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification rebuilds a notification from persistence. Title and body are
// kept as stored so that rows written before sanitizing can be detected.
func RestoreNotification(
	id kernel.UUID,
	recipient Recipient,
	content Content,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		kind:          content.Kind,
		title:         content.Title,
		body:          content.Body,
		metadata:      maps.Clone(content.Metadata),
		isRead:        isRead,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipient(recipient),
		n.setRelatedRequest(content.RelatedRequestID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate ensures the notification came out of a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

// PrincipalID returns the owning principal, if any.
func (n *Notification) PrincipalID() (kernel.UUID, bool) {
	if n.principalID == nil {
		return kernel.UUID{}, false
	}
	return *n.principalID, true
}

func (n *Notification) Email() string {
	return n.email
}

func (n *Notification) Kind() Kind {
	return n.kind
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Body() string {
	return n.body
}

// RelatedRequestID returns the request this notification is about, if any.
func (n *Notification) RelatedRequestID() (kernel.UUID, bool) {
	if n.relatedRequestID == nil {
		return kernel.UUID{}, false
	}
	return *n.relatedRequestID, true
}

// Metadata returns a copy of the event metadata.
func (n *Notification) Metadata() map[string]string {
	return maps.Clone(n.metadata)
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsVisibleTo reports whether p owns the notification or is its email recipient.
func (n *Notification) IsVisibleTo(p principal.Principal) bool {
	if n.principalID != nil && p.Is(*n.principalID) {
		return true
	}
	return p.HasEmail() && strings.EqualFold(n.email, p.Email())
}

// MarkRead flags the notification as read. Marking twice is a no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}

// SanitizeBody strips markup left in the title or body and reports whether anything changed.
func (n *Notification) SanitizeBody() bool {
	changed := false
	if plaintext.ContainsMarkup(n.body) {
		n.body = plaintext.Strip(n.body)
		changed = true
	}
	if plaintext.ContainsMarkup(n.title) {
		n.title = plaintext.Strip(n.title)
		changed = true
	}
	return changed
}

// ReferencedRequestID extracts a request id written as "Request #<uuid>" in the body or title.
func (n *Notification) ReferencedRequestID() (kernel.UUID, bool) {
	for _, text := range []string{n.body, n.title} {
		m := requestReference.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		id, err := kernel.UUIDFromString(m[1])
		if err != nil {
			continue
		}
		return id, true
	}
	return kernel.UUID{}, false
}

// AttachRequest links the notification to a request. It reports false when
// a request is already attached.
func (n *Notification) AttachRequest(requestID kernel.UUID) (bool, error) {
	if n.relatedRequestID != nil {
		return false, nil
	}
	if err := n.setRelatedRequest(&requestID); err != nil {
		return false, err
	}
	return true, nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipient(recipient Recipient) error {
	email := strings.TrimSpace(recipient.Email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if recipient.PrincipalID != nil {
		if err := recipient.PrincipalID.Validate(); err != nil {
			return err
		}
		id := *recipient.PrincipalID
		n.principalID = &id
	}
	n.email = email
	return nil
}

func (n *Notification) setRelatedRequest(requestID *kernel.UUID) error {
	if requestID == nil {
		return nil
	}
	if err := requestID.Validate(); err != nil {
		return err
	}
	id := *requestID
	n.relatedRequestID = &id
	return nil
}
