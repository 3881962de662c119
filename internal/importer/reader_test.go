package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

const sheet = `Mes;Data Check-In;Data check-out;Noites;Guest;Lingua;Motivo viagem;Valor;Imposto Municipal;Comissao;Taxa bancaria;Valor sem comissoes;Valor Sem IVA;IVA (6%);Plataforma;;;;Observações
Janeiro;11-Jan-25;14-Jan-25;3;Patricia Soares e mais 7 adultos;Português;Férias;€ 1.200,00;€ 24,00;€ 180,00;€ 12,00;€ 1.008,00;€ 950,94;€ 57,06;Booking;;;;
Janeiro;20-Jan-25;22-Jan-25;2;Rita + 1 hospedes;Frances;;€ 300,00;-;€ 45,00;;;;€ 15,00;Airbnb;;;;cancelada pelo hóspede
Total;;;;;;;;;;;;;;
Fevereiro;;;;;;;;;;;;;;
Fevereiro;05-Fev-25;05-Fev-25;0;Erro;;;;;;;;;;;;;;
Março;"01-Mar-25";"03-Mar-25";2;"Smith; John";Ingles;Work;€ 250,00;;;;;;;Direct
`

func TestReadRows(t *testing.T) {
	rows, skipped, err := ReadRows(strings.NewReader(sheet))
	require.NoError(t, err)

	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "2025-01-11", first.CheckIn.Format(domain.DateFormat))
	assert.Equal(t, "2025-01-14", first.CheckOut.Format(domain.DateFormat))
	assert.Equal(t, "Patricia Soares", first.PrimaryName)
	assert.Equal(t, 8, first.Guests)
	assert.Equal(t, "PT", first.Nationality)
	assert.Equal(t, "Férias", first.Notes)
	assert.Equal(t, 1200.0, *first.Financials.GrossValue)
	assert.Equal(t, 24.0, *first.Financials.MunicipalTax)
	assert.Equal(t, 180.0, *first.Financials.Commission)
	assert.Equal(t, 12.0, *first.Financials.BankFee)
	assert.Equal(t, 57.06, *first.Financials.VAT)
	assert.Equal(t, "Booking", *first.Financials.Platform)

	second := rows[1]
	assert.Equal(t, "Smith; John", second.PrimaryName)
	assert.Equal(t, "EN", second.Nationality)
	assert.Nil(t, second.Financials.Commission)

	require.Len(t, skipped, 2)
	assert.Equal(t, Skip{Line: 3, Reason: "cancelled"}, skipped[0])
	assert.Equal(t, 6, skipped[1].Line)
}

func TestRow_BookingIsConfirmedWithDerivedValues(t *testing.T) {
	rows, _, err := ReadRows(strings.NewReader(sheet))
	require.NoError(t, err)

	b := rows[0].Booking(1)

	assert.Equal(t, int64(1), b.AccommodationID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	require.NotNil(t, b.Financials.ValueNetOfCommissions)
	assert.Equal(t, 1008.0, *b.Financials.ValueNetOfCommissions)
	assert.Equal(t, 950.94, *b.Financials.ValueNetOfVAT)
}
