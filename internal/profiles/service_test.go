package profiles

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"testing"

	"github.com/angelmondragon/mentormatch-backend/internal/media"
	"github.com/angelmondragon/mentormatch-backend/internal/users"
	"github.com/angelmondragon/mentormatch-backend/pkg/db"
	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mentorPlaceholder = "https://img.test/mentor.png"
	menteePlaceholder = "https://img.test/mentee.png"
)

type fixture struct {
	client  *db.Client
	users   *users.Repository
	repo    *Repository
	store   *media.FSStore
	service Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	client, err := db.NewSQLite(ctx, "file::memory:", nil)
	require.NoError(t, err)
	require.NoError(t, client.Bootstrap(ctx))
	t.Cleanup(func() { _ = client.Close() })

	store, err := media.NewFSStore(t.TempDir())
	require.NoError(t, err)

	usersRepo := users.NewRepository(client.DB())
	repo := NewRepository(client.DB())
	svc, err := NewService(ServiceParams{
		Users:    usersRepo,
		Repo:     repo,
		Tx:       client,
		Store:    store,
		Rules:    media.Rules{MaxBytes: 1 << 20, MinSide: 500, MaxSide: 1000, JPEGQuality: 90},
		Resolver: media.NewResolver(mentorPlaceholder, menteePlaceholder),
	})
	require.NoError(t, err)
	return &fixture{client: client, users: usersRepo, repo: repo, store: store, service: svc}
}

func (f *fixture) createUser(t *testing.T, email string, role enums.UserRole) *models.User {
	t.Helper()
	ctx := context.Background()
	user, err := f.users.Create(ctx, users.CreateUserDTO{Email: email, PasswordHash: "hash", Name: "Initial", Role: role})
	require.NoError(t, err)
	require.NoError(t, f.repo.CreateEmpty(ctx, user.ID, role))
	return user
}

func squarePNG(t *testing.T, side int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}

func TestMeReturnsDefaultsForFreshMentor(t *testing.T) {
	f := newFixture(t)
	mentor := f.createUser(t, "mentor@example.com", enums.UserRoleMentor)

	me, err := f.service.Me(context.Background(), mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, mentor.ID, me.ID)
	assert.Equal(t, "mentor@example.com", me.Email)
	assert.Equal(t, enums.UserRoleMentor, me.Role)
	assert.Equal(t, "Initial", me.Profile.Name)
	assert.Equal(t, mentorPlaceholder, me.Profile.ImageURL)
	require.NotNil(t, me.Profile.Skills)
	assert.Empty(t, *me.Profile.Skills)
}

func TestMeForMenteeOmitsSkills(t *testing.T) {
	f := newFixture(t)
	mentee := f.createUser(t, "mentee@example.com", enums.UserRoleMentee)

	me, err := f.service.Me(context.Background(), mentee.ID)
	require.NoError(t, err)
	assert.Nil(t, me.Profile.Skills)
	assert.Equal(t, menteePlaceholder, me.Profile.ImageURL)
}

func TestMeUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.service.Me(context.Background(), 999)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func TestGetFallsBackWhenProfileRowMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.Create(ctx, users.CreateUserDTO{Email: "bare@example.com", PasswordHash: "h", Name: "Bare", Role: enums.UserRoleMentee})
	require.NoError(t, err)

	profile, err := f.service.Get(ctx, user.ID, enums.UserRoleMentee)
	require.NoError(t, err)
	assert.Equal(t, "Bare", profile.Name)
	assert.Equal(t, "", profile.Bio)
	assert.Equal(t, menteePlaceholder, profile.ImageURL)

	_, err = f.service.Get(ctx, user.ID, enums.UserRoleMentor)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func TestUpdateMentorWithImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mentor := f.createUser(t, "mentor@example.com", enums.UserRoleMentor)

	url, err := f.service.Update(ctx, mentor.ID, enums.UserRoleMentor, MentorUpdate{
		Name:   "Tess",
		Bio:    "Go and databases",
		Image:  squarePNG(t, 500),
		Skills: types.SkillSet{"Go", "SQL", "Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/images/mentor/"+itoa(mentor.ID), url)

	profile, err := f.service.Get(ctx, mentor.ID, enums.UserRoleMentor)
	require.NoError(t, err)
	assert.Equal(t, "Tess", profile.Name)
	assert.Equal(t, "Go and databases", profile.Bio)
	assert.Equal(t, url, profile.ImageURL)
	require.NotNil(t, profile.Skills)
	assert.Equal(t, types.SkillSet{"Go", "SQL"}, *profile.Skills)

	img, err := f.service.Image(ctx, enums.UserRoleMentor, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, media.MimePNG, img.ContentType)
	assert.NotEmpty(t, img.Data)
	assert.Empty(t, img.RedirectURL)

	// A later update without an image keeps the stored one.
	url, err = f.service.Update(ctx, mentor.ID, enums.UserRoleMentor, MentorUpdate{Name: "Tess", Bio: "changed"})
	require.NoError(t, err)
	assert.Equal(t, "/api/images/mentor/"+itoa(mentor.ID), url)
}

func TestUpdateInvalidImageAppliesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mentee := f.createUser(t, "mentee@example.com", enums.UserRoleMentee)

	_, err := f.service.Update(ctx, mentee.ID, enums.UserRoleMentee, MenteeUpdate{
		Name:  "Changed",
		Bio:   "changed bio",
		Image: squarePNG(t, 200),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidImage, pkgerrors.CodeOf(err))

	profile, err := f.service.Get(ctx, mentee.ID, enums.UserRoleMentee)
	require.NoError(t, err)
	assert.Equal(t, "Initial", profile.Name)
	assert.Equal(t, "", profile.Bio)
	assert.Equal(t, menteePlaceholder, profile.ImageURL)
}

func TestUpdateRejectsMismatchedPayload(t *testing.T) {
	f := newFixture(t)
	mentee := f.createUser(t, "mentee@example.com", enums.UserRoleMentee)

	_, err := f.service.Update(context.Background(), mentee.ID, enums.UserRoleMentee, MentorUpdate{Name: "x"})
	assert.Equal(t, pkgerrors.CodeInvalidRequest, pkgerrors.CodeOf(err))

	_, err = f.service.Update(context.Background(), mentee.ID, enums.UserRoleMentee, nil)
	assert.Equal(t, pkgerrors.CodeInvalidRequest, pkgerrors.CodeOf(err))

	_, err = f.service.Update(context.Background(), mentee.ID, enums.UserRoleMentee, MenteeUpdate{Name: "   "})
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestUpdateRejectsRoleNotMatchingAccount(t *testing.T) {
	f := newFixture(t)
	mentee := f.createUser(t, "mentee@example.com", enums.UserRoleMentee)

	_, err := f.service.Update(context.Background(), mentee.ID, enums.UserRoleMentor, MentorUpdate{Name: "x"})
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.CodeOf(err))
}

func TestImageFallsBackToPlaceholder(t *testing.T) {
	f := newFixture(t)
	mentee := f.createUser(t, "mentee@example.com", enums.UserRoleMentee)

	img, err := f.service.Image(context.Background(), enums.UserRoleMentee, mentee.ID)
	require.NoError(t, err)
	assert.Equal(t, menteePlaceholder, img.RedirectURL)

	_, err = f.service.Image(context.Background(), enums.UserRole("admin"), mentee.ID)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestUpdateRejectsSkillContainingSeparator(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mentor := f.createUser(t, "mentor@example.com", enums.UserRoleMentor)

	_, err := f.service.Update(ctx, mentor.ID, enums.UserRoleMentor, MentorUpdate{
		Name:   "Changed",
		Skills: types.SkillSet{"C, C++", "Go"},
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidRequest, pkgerrors.CodeOf(err))

	profile, err := f.service.Get(ctx, mentor.ID, enums.UserRoleMentor)
	require.NoError(t, err)
	assert.Equal(t, "Initial", profile.Name)
	require.NotNil(t, profile.Skills)
	assert.Empty(t, *profile.Skills)
}
