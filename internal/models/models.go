package models

import "time"

// Role is the closed set of privilege levels a caller can hold. Routes
// declare the minimum role they require; RolePublic means no credential.
type Role string

const (
	RolePublic Role = "public"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// rank orders roles so a single predicate covers every gate.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 2
	case RoleStaff:
		return 1
	default:
		return 0
	}
}

// Satisfies reports whether a caller holding role r meets the given
// requirement. admin satisfies everything, staff satisfies staff and
// public, public satisfies only public.
func (r Role) Satisfies(required Role) bool {
	return r.rank() >= required.rank()
}

// Valid reports whether r is one of the assignable roles (public is the
// absence of a credential, never stored on a user).
func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleAdmin
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PostStatus is a blog post's visibility state.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type BlogPost struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Excerpt    string     `json:"excerpt"`
	Slug       string     `json:"slug"`
	Tags       []string   `json:"tags"`
	Status     PostStatus `json:"status"`
	AuthorID   int64      `json:"author_id"`
	AuthorName string     `json:"author_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// GalleryCategory is the closed set of gallery sections.
type GalleryCategory string

const (
	CategoryNature     GalleryCategory = "nature"
	CategoryWellness   GalleryCategory = "wellness"
	CategoryMeditation GalleryCategory = "meditation"
	CategoryRetreat    GalleryCategory = "retreat"
	CategoryEvents     GalleryCategory = "events"
	CategoryFacilities GalleryCategory = "facilities"
)

// GalleryCategories lists every valid category, in display order.
var GalleryCategories = []GalleryCategory{
	CategoryNature, CategoryWellness, CategoryMeditation,
	CategoryRetreat, CategoryEvents, CategoryFacilities,
}

func (c GalleryCategory) Valid() bool {
	for _, v := range GalleryCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ImageRef is the opaque handle returned by the image store. Key
// identifies the stored object for later release; URL is what clients
// render. Placeholder marks refs substituted after an upload failure.
type ImageRef struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

type GalleryItem struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       ImageRef        `json:"image"`
	Category    GalleryCategory `json:"category"`
	Featured    bool            `json:"featured"`
	Order       int             `json:"order"`
	CreatedByID int64           `json:"created_by_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ContactStatus tracks the handling state of a contact submission.
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactContacted ContactStatus = "contacted"
	ContactResolved  ContactStatus = "resolved"
)

func (s ContactStatus) Valid() bool {
	return s == ContactNew || s == ContactContacted || s == ContactResolved
}

// InquiryType classifies what a contact submission is about.
type InquiryType string

const (
	InquiryGeneral     InquiryType = "general"
	InquiryAppointment InquiryType = "appointment"
	InquiryCounseling  InquiryType = "counseling"
	InquiryFacility    InquiryType = "facility"
	InquiryOther       InquiryType = "other"
)

func (t InquiryType) Valid() bool {
	switch t {
	case InquiryGeneral, InquiryAppointment, InquiryCounseling, InquiryFacility, InquiryOther:
		return true
	}
	return false
}

type ContactSubmission struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	InquiryType InquiryType   `json:"inquiry_type"`
	Status      ContactStatus `json:"status"`
	AdminNotes  string        `json:"admin_notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ContactStats summarizes submissions for the admin dashboard.
type ContactStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Resolved  int `json:"resolved"`
	Recent    int `json:"recent"` // submissions in the last 7 days
}

// CategoryCount is one row of the public gallery category summary.
type CategoryCount struct {
	Category GalleryCategory `json:"category"`
	Count    int             `json:"count"`
}
