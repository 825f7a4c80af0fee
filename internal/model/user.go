package model

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// User is the single record captured by the form.
type User struct {
	ID            *uint  `json:"id" form:"-" gorm:"primaryKey;autoIncrement"`
	FirstName     string `json:"first_name" form:"firstName" gorm:"size:255" validate:"notblank"`
	LastName      string `json:"last_name" form:"lastName" gorm:"size:255" validate:"notblank"`
	Email         string `json:"email" form:"email" gorm:"size:255"`
	Country       string `json:"country" form:"country" gorm:"size:255"`
	StreetAddress string `json:"street_address" form:"streetAddress" gorm:"size:255"`
	City          string `json:"city" form:"city" gorm:"size:255"`
	Region        string `json:"region" form:"region" gorm:"size:255"`
	PostalCode    string `json:"postal_code" form:"postalCode" gorm:"size:64"`
}

// TableName pins the table name.
func (User) TableName() string {
	return "users"
}

// IDValue returns the identity, or 0 when storage has not assigned one yet.
func (u *User) IDValue() uint {
	if u == nil || u.ID == nil {
		return 0
	}
	return *u.ID
}

// SetID assigns the identity.
func (u *User) SetID(id uint) {
	u.ID = &id
}

// Equal compares all nine fields. Two unset identities are equal.
func (u *User) Equal(o *User) bool {
	if u == o {
		return true
	}
	if u == nil || o == nil {
		return false
	}
	if (u.ID == nil) != (o.ID == nil) {
		return false
	}
	if u.ID != nil && *u.ID != *o.ID {
		return false
	}
	return u.FirstName == o.FirstName &&
		u.LastName == o.LastName &&
		u.Email == o.Email &&
		u.Country == o.Country &&
		u.StreetAddress == o.StreetAddress &&
		u.City == o.City &&
		u.Region == o.Region &&
		u.PostalCode == o.PostalCode
}

// Hash digests all nine fields; users that are Equal hash the same.
func (u *User) Hash() uint64 {
	if u == nil {
		return 0
	}
	d := xxhash.New()
	if u.ID == nil {
		_, _ = d.Write([]byte{0})
	} else {
		_, _ = d.Write([]byte{1})
		_, _ = d.WriteString(strconv.FormatUint(uint64(*u.ID), 10))
	}
	for _, f := range [...]string{
		u.FirstName, u.LastName, u.Email, u.Country,
		u.StreetAddress, u.City, u.Region, u.PostalCode,
	} {
		// length prefix keeps ("ab","c") and ("a","bc") apart
		_, _ = d.WriteString(strconv.Itoa(len(f)))
		_, _ = d.Write([]byte{':'})
		_, _ = d.WriteString(f)
	}
	return d.Sum64()
}

// String lists every field.
func (u *User) String() string {
	if u == nil {
		return "User<nil>"
	}
	id := "null"
	if u.ID != nil {
		id = strconv.FormatUint(uint64(*u.ID), 10)
	}
	return fmt.Sprintf(
		"User{id=%s, firstName='%s', lastName='%s', email='%s', country='%s', streetAddress='%s', city='%s', region='%s', postalCode='%s'}",
		id, u.FirstName, u.LastName, u.Email, u.Country, u.StreetAddress, u.City, u.Region, u.PostalCode,
	)
}
