package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleUser() *User {
	return &User{
		FirstName:     "Dan",
		LastName:      "Vega",
		Email:         "dan@x.com",
		Country:       "United States",
		StreetAddress: "1 Main St",
		City:          "Cleveland",
		Region:        "OH",
		PostalCode:    "44101",
	}
}

func withID(id uint) func() *User {
	return func() *User {
		u := sampleUser()
		u.SetID(id)
		return u
	}
}

func TestUser_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  func() *User
		equal bool
	}{
		{name: "both identities unset", a: sampleUser, b: sampleUser, equal: true},
		{name: "same identity", a: withID(7), b: withID(7), equal: true},
		{name: "different identities", a: withID(1), b: withID(2), equal: false},
		{name: "one identity unset", a: sampleUser, b: withID(1), equal: false},
		{
			name:  "different postal code",
			a:     sampleUser,
			b:     func() *User { u := sampleUser(); u.PostalCode = "44102"; return u },
			equal: false,
		},
		{name: "nil against value", a: func() *User { return nil }, b: sampleUser, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a(), tt.b()
			assert.Equal(t, tt.equal, a.Equal(b))
			assert.Equal(t, tt.equal, b.Equal(a))
		})
	}
}

func TestUser_HashConsistentWithEqual(t *testing.T) {
	a, b := sampleUser(), sampleUser()
	assert.Equal(t, a.Hash(), b.Hash())

	a.SetID(3)
	b.SetID(3)
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetID(4)
	assert.NotEqual(t, a.Hash(), b.Hash())

	c := &User{FirstName: "ab", LastName: "c"}
	d := &User{FirstName: "a", LastName: "bc"}
	assert.NotEqual(t, c.Hash(), d.Hash())
}

func TestUser_String(t *testing.T) {
	u := &User{FirstName: "Dan", LastName: "Vega", Email: "dan@x.com"}
	assert.Equal(t,
		"User{id=null, firstName='Dan', lastName='Vega', email='dan@x.com', country='', streetAddress='', city='', region='', postalCode=''}",
		u.String())

	u.SetID(12)
	assert.Contains(t, u.String(), "User{id=12, firstName='Dan'")
}

func TestUser_IDValue(t *testing.T) {
	var u User
	assert.Equal(t, uint(0), u.IDValue())
	u.SetID(9)
	assert.Equal(t, uint(9), u.IDValue())
	assert.Equal(t, "users", u.TableName())
}
