package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emunah/internal/money"
)

func TestProductHappyPath(t *testing.T) {
	body := []byte(`{
		"name":"Camiseta EMUNAH Básica","slug":"camiseta-emunah-basica",
		"price":"89.90","description":"Algodão premium","category":"Roupas",
		"image":"/uploads/camiseta.png","stock":10
	}`)
	p, err := Product(body)
	require.NoError(t, err)
	assert.Equal(t, "camiseta-emunah-basica", p.Slug)
	assert.Equal(t, money.Amount(8990), p.Price)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.Active, "active defaults to true")
}

func TestProductMissingFieldNamesIt(t *testing.T) {
	_, err := Product([]byte(`{"name":"X","slug":"x","price":"1.00","description":"d","category":"c"}`))
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "image", verr.Field)
}

func TestProductBadSlug(t *testing.T) {
	for _, slug := range []string{"Maiúsculo", "with space", "trailing-", "-leading", "dupla--hifen", ""} {
		_, err := Product([]byte(`{"name":"X","slug":"` + slug + `","price":"1.00","description":"d","category":"c","image":"i"}`))
		var verr *Error
		require.ErrorAs(t, err, &verr, "slug %q", slug)
		assert.Equal(t, "slug", verr.Field)
	}
}

func TestProductStockRejectsNegativeAndJunk(t *testing.T) {
	base := `{"name":"X","slug":"x","price":"1.00","description":"d","category":"c","image":"i","stock":`
	for _, stock := range []string{`-1`, `"abc"`, `1.5`, `true`} {
		_, err := Product([]byte(base + stock + `}`))
		var verr *Error
		require.ErrorAs(t, err, &verr, "stock %s", stock)
		assert.Equal(t, "stock", verr.Field)
	}
	// numeric strings are how the admin forms submit
	p, err := Product([]byte(base + `"7"}`))
	require.NoError(t, err)
	assert.Equal(t, 7, p.Stock)
}

func TestProductPatchOnlyPresentFields(t *testing.T) {
	p, err := ProductPatch([]byte(`{"stock":5}`))
	require.NoError(t, err)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 5, *p.Stock)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.Active)
}

func TestClientRequiresNameAndPhone(t *testing.T) {
	_, err := Client([]byte(`{"name":"Maria"}`))
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)

	c, err := Client([]byte(`{"name":"Maria Silva","phone":"(11) 98888-7777","email":"maria@example.com"}`))
	require.NoError(t, err)
	assert.Equal(t, "(11) 98888-7777", c.Phone, "phone kept verbatim")
}

func TestClientPatchRejectsBlankPhone(t *testing.T) {
	_, err := ClientPatch([]byte(`{"phone":"  "}`))
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)
}

func TestQuoteStatusEnum(t *testing.T) {
	base := `{"clientId":"c1","clientName":"Maria","clientPhone":"11","items":"[]","subtotal":"0.00","total":"0.00","status":`
	for _, st := range []string{`"pending"`, `"sent"`, `"approved"`, `"rejected"`, `"converted"`} {
		_, err := Quote([]byte(base + st + `}`))
		assert.NoError(t, err, "status %s", st)
	}
	_, err := Quote([]byte(base + `"paid"}`))
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestOrderShippingCostMustBeNonNegative(t *testing.T) {
	body := `{"clientId":"c1","clientName":"M","clientPhone":"11","items":"[]","subtotal":"1.00","total":"1.00","shippingCost":"-5.00"}`
	_, err := Order([]byte(body))
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "shippingCost", verr.Field)
}

func TestSubtotalAcceptsStringOrNumber(t *testing.T) {
	asString := `{"clientId":"c1","clientName":"M","clientPhone":"11","items":"[]","subtotal":"25.00","total":"25.00"}`
	q1, err := Quote([]byte(asString))
	require.NoError(t, err)
	asNumber := `{"clientId":"c1","clientName":"M","clientPhone":"11","items":"[]","subtotal":25,"total":25}`
	q2, err := Quote([]byte(asNumber))
	require.NoError(t, err)
	assert.Equal(t, q1.Subtotal, q2.Subtotal)
}

func TestSettingsPatch(t *testing.T) {
	s, err := SettingsPatch([]byte(`{"storeName":"EMUNAH Store","quoteAlerts":false}`))
	require.NoError(t, err)
	require.NotNil(t, s.StoreName)
	assert.Equal(t, "EMUNAH Store", *s.StoreName)
	require.NotNil(t, s.QuoteAlerts)
	assert.False(t, *s.QuoteAlerts)
	assert.Nil(t, s.ContactEmail)
}

func TestDateBound(t *testing.T) {
	start, ok := DateBound("2026-03-01", false)
	require.True(t, ok)
	assert.Equal(t, "2026-03-01T00:00:00.000000000Z", start)

	end, ok := DateBound("2026-03-01", true)
	require.True(t, ok)
	assert.Equal(t, "2026-03-01T23:59:59.999999999Z", end)

	rfc, ok := DateBound("2026-03-01T12:30:00Z", false)
	require.True(t, ok)
	assert.Equal(t, "2026-03-01T12:30:00.000000000Z", rfc)

	_, ok = DateBound("01/03/2026", false)
	assert.False(t, ok)
}
