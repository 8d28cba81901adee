package ofx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfmachado/backoffice/internal/ofx"
	"github.com/rfmachado/backoffice/internal/transaction"
)

const sampleStatement = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
CHARSET:1252

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STMTRS>
<CURDEF>BRL
<BANKTRANLIST>
<DTSTART>20260301
<DTEND>20260331
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260310120000[-3:BRT]
<TRNAMT>-45.00
<FITID>2026031001
<MEMO>Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260315
<TRNAMT>1250.75
<FITID>2026031502
<NAME>Salary ACME
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func TestParse(t *testing.T) {
	entries, err := ofx.Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ofx.Entry{
		ExternalID:  "2026031001",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		AmountCents: -4500,
		Description: "Market",
		Type:        transaction.TypeExpense,
	}, entries[0])

	assert.Equal(t, ofx.Entry{
		ExternalID:  "2026031502",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		AmountCents: 125075,
		Description: "Salary ACME",
		Type:        transaction.TypeIncome,
	}, entries[1])
}

func TestParse_MissingOFXMarker(t *testing.T) {
	_, err := ofx.Parse(strings.NewReader("not a statement at all"))
	assert.ErrorIs(t, err, ofx.ErrMalformedStatement)
}

func TestParse_SingleTransaction(t *testing.T) {
	input := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>
<STMTTRN>
<DTPOSTED>20260401
<TRNAMT>-10.00
<FITID>abc
<MEMO>Coffee
</STMTTRN>
</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

	entries, err := ofx.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Coffee", entries[0].Description)
	assert.Equal(t, int64(-1000), entries[0].AmountCents)
}

func TestParse_MemoFallsBackToName(t *testing.T) {
	input := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>
<STMTTRN>
<DTPOSTED>20260401
<TRNAMT>5.00
<NAME>PIX received
</STMTTRN>
</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

	entries, err := ofx.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "PIX received", entries[0].Description)
	assert.Equal(t, transaction.TypeIncome, entries[0].Type)
}

func TestParse_MissingDateKeepsRecord(t *testing.T) {
	input := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>
<STMTTRN><TRNAMT>-45.00<MEMO>Market</STMTTRN>
</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

	entries, err := ofx.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(-4500), entries[0].AmountCents)
	assert.Equal(t, transaction.TypeExpense, entries[0].Type)
	assert.Equal(t, "Market", entries[0].Description)
	assert.True(t, entries[0].Date.IsZero())
}

func TestParse_SkipsUnparseableRecords(t *testing.T) {
	input := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>
<STMTTRN>
<DTPOSTED>garbage
<TRNAMT>-10.00
</STMTTRN>
<STMTTRN>
<DTPOSTED>20260402
<TRNAMT>not-a-number
</STMTTRN>
<STMTTRN>
<DTPOSTED>20260403
<TRNAMT>-7,50
<MEMO>Bus fare
</STMTTRN>
</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

	entries, err := ofx.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(-750), entries[0].AmountCents)
}

func TestParse_BareAmpersandInMemo(t *testing.T) {
	input := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>
<STMTTRN>
<DTPOSTED>20260405
<TRNAMT>-20.00
<MEMO>Johnson & Johnson
</STMTTRN>
</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

	entries, err := ofx.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Johnson & Johnson", entries[0].Description)
}

func TestParse_EmptyTransactionList(t *testing.T) {
	input := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS><BANKTRANLIST>
<DTSTART>20260301
</BANKTRANLIST></STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

	entries, err := ofx.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
