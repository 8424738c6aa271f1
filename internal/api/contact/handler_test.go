package contactapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []Message
	err  error
}

func (f *fakeMailer) Send(msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func submitContact(t *testing.T, mailer Mailer, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/contact", NewHandler(mailer).Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmit_SendsAndConfirms(t *testing.T) {
	mailer := &fakeMailer{}

	w := submitContact(t, mailer, `{
		"name": "Mette Hansen",
		"email": "mette@example.com",
		"message": "Jeg er interesseret i et af jeres værker.",
		"artwork": "Havblik"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Tak for din besked! Jeg vender tilbage hurtigst muligt.", body["message"])

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Mette Hansen", mailer.sent[0].Name)
	assert.Equal(t, "Havblik", mailer.sent[0].Artwork)
}

func TestSubmit_FromCartGetsItsOwnConfirmation(t *testing.T) {
	mailer := &fakeMailer{}

	w := submitContact(t, mailer, `{
		"name": "Mette Hansen",
		"email": "mette@example.com",
		"message": "Jeg vil gerne købe indholdet af min kurv.",
		"from_cart": "true"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["message"], "kurv")
}

func TestSubmit_TooShortMessageDoesNotSend(t *testing.T) {
	mailer := &fakeMailer{}

	w := submitContact(t, mailer, `{
		"name": "Mette Hansen",
		"email": "mette@example.com",
		"message": "for kort"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	fields, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "message")
}

func TestSubmit_InvalidEmailDoesNotSend(t *testing.T) {
	mailer := &fakeMailer{}

	w := submitContact(t, mailer, `{
		"name": "Mette Hansen",
		"email": "ikke-en-email",
		"message": "En besked der er lang nok til at komme igennem."
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSubmit_MailerFailureIsAServerError(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp is not configured")}

	w := submitContact(t, mailer, `{
		"name": "Mette Hansen",
		"email": "mette@example.com",
		"message": "En besked der er lang nok til at komme igennem."
	}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body["message"], "smtp")
}

func TestEmailSubject(t *testing.T) {
	assert.Equal(t, `Forespørgsel på værket: "Havblik"`, emailSubject(Message{Artwork: "Havblik"}))
	assert.Equal(t, `Henvendelse vedrørende: "Fernisering"`, emailSubject(Message{Subject: "Fernisering"}))
	assert.Equal(t, "Ny besked fra din hjemmeside", emailSubject(Message{}))
}
