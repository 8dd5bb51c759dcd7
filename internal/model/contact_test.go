package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_DecodesBackendJSON(t *testing.T) {
	raw := `{"id":7,"name":"Ada","lastName":"Lovelace","middleInitial":"K","phone":"555","address":"1 Main",
	"email":"ada@example.com","court":"Supreme","locale":"North","branch":"A","isEmergency":true,
	"isVisibleToAll":false,"imagePath":"/img/7.png"}`

	var c Contact
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "Lovelace", c.LastName)
	assert.Equal(t, "K", c.MiddleInitial)
	assert.True(t, c.IsEmergency)
	assert.False(t, c.IsVisibleToAll)
	assert.Equal(t, "/img/7.png", c.ImagePath)
}

func TestFilterEmergency(t *testing.T) {
	contacts := []Contact{{ID: 1}, {ID: 2, IsEmergency: true}, {ID: 3}, {ID: 4, IsEmergency: true}}

	got := FilterEmergency(contacts)

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
	assert.Empty(t, FilterEmergency(nil))
}

func TestFindByID(t *testing.T) {
	contacts := []Contact{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	c, ok := FindByID(contacts, 2)
	assert.True(t, ok)
	assert.Equal(t, "B", c.Name)

	_, ok = FindByID(contacts, 9)
	assert.False(t, ok)
}

func TestContact_Input(t *testing.T) {
	c := Contact{ID: 5, Name: "Ada", Phone: "555", IsVisibleToAll: true}
	in := c.Input()

	assert.Equal(t, "Ada", in.Name)
	assert.Equal(t, "555", in.Phone)
	assert.True(t, in.IsVisibleToAll)
}
