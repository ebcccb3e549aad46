package usecase

import (
	"fmt"
	"strings"

	"pix_server/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	copyPixButtonID    = "copiar_pix"
	copyPixButtonLabel = "📋 COPIAR CÓDIGO PIX"
	copyPixButtonText  = "Clique abaixo para copiar o código PIX:"
)

func formatBRL(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func centsToBRL(cents int64) string {
	return formatBRL(decimal.New(cents, -2))
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "cliente"
	}
	return fields[0]
}

// orderSummaryMessage is the first WhatsApp message: greeting plus itemized cart.
func orderSummaryMessage(order entities.PixOrder, tx entities.PixTransaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 Olá, %s!\n\n", firstName(order.Name))
	if order.HasCart() {
		b.WriteString("🛒 Seu pedido:\n")
		for _, item := range order.Cart {
			fmt.Fprintf(&b, "• %sx %s — %s\n", item.Quantity.String(), item.Title, formatBRL(item.Subtotal()))
		}
		if order.Shipping.IsPositive() {
			fmt.Fprintf(&b, "🚚 Frete: %s\n", formatBRL(order.Shipping))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "💰 Total: %s\n", centsToBRL(order.AmountCents))
	fmt.Fprintf(&b, "🧾 TXID: %s", tx.TxID)
	return b.String()
}

func qrCodeCaption(tx entities.PixTransaction) string {
	return "Escaneie o QR Code ou use o código Copia e Cola:\n\n" + tx.CopiaECola
}

// qrCodeImage turns the gateway QR payload into something Z-API accepts:
// URLs and data URIs pass through, bare base64 gets a PNG data URI prefix.
func qrCodeImage(qr string) string {
	qr = strings.TrimSpace(qr)
	if qr == "" || strings.HasPrefix(qr, "http://") || strings.HasPrefix(qr, "https://") || strings.HasPrefix(qr, "data:") {
		return qr
	}
	return "data:image/png;base64," + qr
}

func paymentConfirmedMessage(name string, txid string, amountCents int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Pagamento confirmado, %s!\n\n", firstName(name))
	if amountCents > 0 {
		fmt.Fprintf(&b, "💰 Valor: %s\n", centsToBRL(amountCents))
	}
	fmt.Fprintf(&b, "🧾 TXID: %s\n\n", txid)
	b.WriteString("Obrigado pela compra! Em breve você receberá os próximos passos.")
	return b.String()
}
