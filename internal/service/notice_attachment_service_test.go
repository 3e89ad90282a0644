package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/storage"
)

func newAttachmentFixture(t *testing.T) (*NoticeAttachmentService, *models.Notice, *Resources) {
	t.Helper()
	res, _ := newTestResources(t)
	files, err := storage.NewLocalStorage(t.TempDir(), 64)
	require.NoError(t, err)
	svc := NewNoticeAttachmentService(res.Notices, files, storage.NewSignedURLSigner("secret", time.Minute), nil)

	notice, err := res.Notices.Create(context.Background(), doc{"title": "Sports Day", "body": "Friday at 9am"})
	require.NoError(t, err)
	return svc, notice, res
}

func tokenFrom(t *testing.T, url string) string {
	t.Helper()
	idx := strings.LastIndex(url, "/files/")
	require.GreaterOrEqual(t, idx, 0)
	return url[idx+len("/files/"):]
}

func TestNoticeDefaults(t *testing.T) {
	_, notice, _ := newAttachmentFixture(t)
	assert.Equal(t, models.AudienceAll, notice.Audience)
	assert.False(t, notice.PublishedAt.IsZero())
	assert.Nil(t, notice.Attachment)
}

func TestAttachAndDownload(t *testing.T) {
	ctx := context.Background()
	svc, notice, _ := newAttachmentFixture(t)

	updated, err := svc.Attach(ctx, notice.ID, "../Schedule.PDF", "application/pdf", strings.NewReader("fixture"))
	require.NoError(t, err)
	require.NotNil(t, updated.Attachment)
	assert.Equal(t, "Schedule.PDF", updated.Attachment.FileName)
	assert.Equal(t, int64(7), updated.Attachment.Size)
	assert.True(t, strings.HasPrefix(updated.Attachment.Key, "notices/"+notice.ID+"/"))
	assert.True(t, strings.HasSuffix(updated.Attachment.Key, ".pdf"))

	link, err := svc.Link(ctx, notice.ID, "/api/v1/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.URL, "/api/v1/files/"))
	assert.Equal(t, "Schedule.PDF", link.FileName)

	file, attachment, err := svc.Open(ctx, tokenFrom(t, link.URL))
	require.NoError(t, err)
	defer file.Close()
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "fixture", string(body))
	assert.Equal(t, "application/pdf", attachment.ContentType)
}

func TestReplacedAttachmentInvalidatesOldLinks(t *testing.T) {
	ctx := context.Background()
	svc, notice, _ := newAttachmentFixture(t)

	_, err := svc.Attach(ctx, notice.ID, "a.txt", "", strings.NewReader("one"))
	require.NoError(t, err)
	oldLink, err := svc.Link(ctx, notice.ID, "")
	require.NoError(t, err)

	_, err = svc.Attach(ctx, notice.ID, "b.txt", "", strings.NewReader("two"))
	require.NoError(t, err)

	_, _, err = svc.Open(ctx, tokenFrom(t, oldLink.URL))
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestAttachmentErrors(t *testing.T) {
	ctx := context.Background()
	svc, notice, res := newAttachmentFixture(t)

	_, err := svc.Link(ctx, notice.ID, "")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Attach(ctx, notice.ID, "big.bin", "", strings.NewReader(strings.Repeat("x", 65)))
	require.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Equal(t, "file exceeds upload limit", appErrors.FromError(err).Message)

	_, err = svc.Attach(ctx, notice.ID, "  ", "", strings.NewReader("x"))
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, _, err = svc.Open(ctx, "tampered.token.value.sig")
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	updated, err := res.Notices.Update(ctx, notice.ID, doc{"attachment": map[string]any{"key": "../../etc/passwd"}})
	require.NoError(t, err)
	assert.Nil(t, updated.Attachment, "attachment is only set through uploads")
}
