package entities

import (
	"fmt"
	"time"
)

// InstanceStatus tracks where a physical copy currently is.
type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// InstanceStatuses lists every valid status, in display order.
var InstanceStatuses = []InstanceStatus{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

// dateDisplayFormat is the medium date format used everywhere a stored
// date is shown to the user.
const dateDisplayFormat = "Jan 2, 2006"

type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100" json:"first_name"`
	FamilyName  string     `gorm:"index;size:100" json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:100" json:"name"`
	Books     []Book    `gorm:"many2many:book_genres;" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"index;size:512" json:"title"`
	Summary   string         `gorm:"type:text" json:"summary"`
	ISBN      string         `gorm:"size:20" json:"isbn"`
	AuthorID  uint           `gorm:"index" json:"author_id"`
	Author    Author         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Genres    []Genre        `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	Instances []BookInstance `gorm:"foreignKey:BookID" json:"instances,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BookInstance is a physical copy of a book held by the library.
type BookInstance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BookID    uint           `gorm:"index" json:"book_id"`
	Book      Book           `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Imprint   string         `gorm:"size:256" json:"imprint"`
	Status    InstanceStatus `gorm:"size:20;default:'Maintenance'" json:"status"`
	DueBack   time.Time      `json:"due_back"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Author) TableName() string       { return "authors" }
func (Genre) TableName() string        { return "genres" }
func (Book) TableName() string         { return "books" }
func (BookInstance) TableName() string { return "book_instances" }

// FullName returns "FamilyName, FirstName", or "" when either part is
// missing so incomplete records never render a dangling comma.
func (a Author) FullName() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan renders the birth-death range. Absent sides render empty; if
// both dates are absent the whole lifespan is "".
func (a Author) Lifespan() string {
	if a.DateOfBirth == nil && a.DateOfDeath == nil {
		return ""
	}
	var birth, death string
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.Format(dateDisplayFormat)
	}
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format(dateDisplayFormat)
	}
	return birth + " - " + death
}

// URL is the canonical detail path for the record.
func (a Author) URL() string { return fmt.Sprintf("/catalog/author/%d", a.ID) }

func (g Genre) URL() string { return fmt.Sprintf("/catalog/genre/%d", g.ID) }

func (b Book) URL() string { return fmt.Sprintf("/catalog/book/%d", b.ID) }

func (bi BookInstance) URL() string { return fmt.Sprintf("/catalog/bookinstance/%d", bi.ID) }

// DueBackDisplay formats the due date for list and detail views.
func (bi BookInstance) DueBackDisplay() string {
	return bi.DueBack.Format(dateDisplayFormat)
}

// DueBackInput formats the due date as a date-input value.
func (bi BookInstance) DueBackInput() string {
	return bi.DueBack.Format("2006-01-02")
}

// DateOfBirthInput and DateOfDeathInput format the optional dates as
// date-input values for update-form prefill. Nil renders as "".
func (a Author) DateOfBirthInput() string { return isoDate(a.DateOfBirth) }

func (a Author) DateOfDeathInput() string { return isoDate(a.DateOfDeath) }

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
