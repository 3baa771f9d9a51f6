package admin

import (
	"testing"

	"catalog-backend/internal/auth"
	"catalog-backend/internal/i18n"
	"catalog-backend/internal/notice"
	"github.com/stretchr/testify/assert"
)

func TestGateAcceptsConfiguredSecret(t *testing.T) {
	q := notice.NewQueue()
	g := NewGate(auth.NewVerifier("open-sesame"), q, nil)
	text := i18n.For(i18n.English).Admin

	g.Open()
	assert.True(t, g.State().Open)
	assert.True(t, g.Submit("open-sesame", text))

	assert.Equal(t, GateState{}, g.State())
	assert.Equal(t, []notice.Notice{{Level: notice.Success, Message: text.Welcome}}, q.Drain())
}

func TestGateRejectsOtherInput(t *testing.T) {
	q := notice.NewQueue()
	g := NewGate(auth.NewVerifier("open-sesame"), q, nil)
	text := i18n.For(i18n.Indonesian).Admin

	g.Open()
	for _, attempt := range []string{"", "open", "open-sesame!", "OPEN-SESAME"} {
		assert.False(t, g.Submit(attempt, text), attempt)
	}

	st := g.State()
	assert.True(t, st.Open)
	assert.True(t, st.Rejected)
	assert.Empty(t, st.Input)
	notes := q.Drain()
	assert.Len(t, notes, 4)
	assert.Equal(t, notice.Notice{Level: notice.Error, Message: text.Error}, notes[0])
}

func TestGateWithoutSecretNeverOpens(t *testing.T) {
	g := NewGate(auth.NewVerifier(""), notice.NewQueue(), nil)
	assert.False(t, g.Submit("", i18n.For(i18n.English).Admin))
}

func TestGateCloseResetsRejection(t *testing.T) {
	g := NewGate(auth.NewVerifier("x"), notice.NewQueue(), nil)
	g.Open()
	g.Submit("y", i18n.For(i18n.English).Admin)
	g.Close()
	assert.Equal(t, GateState{}, g.State())
}
