package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/andhika/duit-bot/internal/bot/mocks"
)

func TestHandleExportCore(t *testing.T) {
	t.Parallel()

	b, ledger := setupTestBot(t)
	ctx := context.Background()
	_, err := ledger.Append(ctx, testUserID, "bakso", 10000, testNow)
	require.NoError(t, err)
	_, err = ledger.Append(ctx, testUserID, "es teh", 5000, testNow)
	require.NoError(t, err)

	mockBot := mocks.NewMockBot()
	update := mocks.CommandUpdate(testChatID, testUserID, "/export")

	b.handleExportCore(ctx, mockBot, update)

	require.Equal(t, 1, mockBot.SentDocumentCount())
	doc := mockBot.LastSentDocument()
	require.Equal(t, "pengeluaran_2025-12.csv", doc.Filename)
	require.Contains(t, doc.Caption, "Desember 2025")
	require.Contains(t, doc.Caption, "2 catatan")
}

func TestHandleExportCoreEmptyMonth(t *testing.T) {
	t.Parallel()

	b, _ := setupTestBot(t)
	mockBot := mocks.NewMockBot()
	update := mocks.CommandUpdate(testChatID, testUserID, "/export 7")

	b.handleExportCore(context.Background(), mockBot, update)

	require.Zero(t, mockBot.SentDocumentCount())
	msg := mockBot.LastSentMessage()
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "Belum ada pengeluaran di bulan Juli 2025")
}

func TestHandleExportCoreInvalidMonth(t *testing.T) {
	t.Parallel()

	b, _ := setupTestBot(t)
	mockBot := mocks.NewMockBot()
	update := mocks.CommandUpdate(testChatID, testUserID, "/export 13")

	b.handleExportCore(context.Background(), mockBot, update)

	msg := mockBot.LastSentMessage()
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "Bulan tidak valid")
}

func TestHandleChartCore(t *testing.T) {
	t.Parallel()

	b, ledger := setupTestBot(t)
	ctx := context.Background()
	_, err := ledger.Append(ctx, testUserID, "bakso", 10000, testNow)
	require.NoError(t, err)
	_, err = ledger.Append(ctx, testUserID, "gojek", 25000, testNow.AddDate(0, 0, -2))
	require.NoError(t, err)

	mockBot := mocks.NewMockBot()
	update := mocks.CommandUpdate(testChatID, testUserID, "/chart 12-2025")

	b.handleChartCore(ctx, mockBot, update)

	require.Equal(t, 1, mockBot.SentDocumentCount())
	doc := mockBot.LastSentDocument()
	require.Equal(t, "grafik_2025-12.png", doc.Filename)
	require.Contains(t, doc.Caption, "Total: Rp 35.000")
}

func TestHandleChartCoreEmptyMonth(t *testing.T) {
	t.Parallel()

	b, _ := setupTestBot(t)
	mockBot := mocks.NewMockBot()
	update := mocks.CommandUpdate(testChatID, testUserID, "/chart 7")

	b.handleChartCore(context.Background(), mockBot, update)

	require.Zero(t, mockBot.SentDocumentCount())
	msg := mockBot.LastSentMessage()
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "Belum ada pengeluaran")
}

func TestSendDocumentCoreFailure(t *testing.T) {
	t.Parallel()

	b, _ := setupTestBot(t)
	mockBot := mocks.NewMockBot()
	mockBot.SendDocumentError = errors.New("upload failed")

	b.sendDocumentCore(context.Background(), mockBot, testChatID, "file.csv", []byte("data"), "caption")

	msg := mockBot.LastSentMessage()
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "Gagal mengirim file")
}
