package service

import (
	"context"
	"errors"
	"testing"

	"github.com/maheshrc27/contentflow/internal/models"
	"github.com/maheshrc27/contentflow/internal/repository"
	"github.com/maheshrc27/contentflow/internal/repository/mocks"
	"github.com/maheshrc27/contentflow/pkg/apperror"
	"go.uber.org/mock/gomock"
)

const (
	testUserID   = "user-1"
	testClientID = "5f0c7a1e-2b3d-4c5e-8f9a-0b1c2d3e4f50"
	testPostID   = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	testTagID    = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
)

type tagFixture struct {
	resolver *mocks.MockPostResolver
	clients  *mocks.MockClientRepository
	tags     *mocks.MockTagRepository
	postTags *mocks.MockPostTagRepository
	svc      TagService
}

func newTagFixture(t *testing.T) *tagFixture {
	ctrl := gomock.NewController(t)
	f := &tagFixture{
		resolver: mocks.NewMockPostResolver(ctrl),
		clients:  mocks.NewMockClientRepository(ctrl),
		tags:     mocks.NewMockTagRepository(ctrl),
		postTags: mocks.NewMockPostTagRepository(ctrl),
	}
	f.svc = NewTagService(f.resolver, f.clients, f.tags, f.postTags)
	return f
}

func (f *tagFixture) ownedPost(kind repository.PostKind) {
	f.resolver.EXPECT().Resolve(gomock.Any(), testPostID).
		Return(&repository.ResolvedPost{Kind: kind, ID: testPostID, ClientID: testClientID}, nil)
	f.clients.EXPECT().GetByID(gomock.Any(), testClientID).
		Return(&models.Client{ID: testClientID, UserID: testUserID}, nil)
}

func TestAddPostTag(t *testing.T) {
	f := newTagFixture(t)
	f.ownedPost(repository.PostKindCalendar)
	f.tags.EXPECT().GetByID(gomock.Any(), testTagID).
		Return(&models.Tag{ID: testTagID, ClientID: testClientID, Name: "Launch", Color: "#ff0000"}, nil)
	f.postTags.EXPECT().Exists(gomock.Any(), testPostID, testTagID).Return(false, nil)
	f.postTags.EXPECT().Create(gomock.Any(), testPostID, testTagID).Return("pt-1", nil)

	tag, err := f.svc.AddPostTag(context.Background(), testUserID, testPostID, testTagID)
	if err != nil {
		t.Fatal(err)
	}
	if tag.ID != testTagID || tag.Name != "Launch" || tag.Color != "#ff0000" || tag.ClientID != "" {
		t.Fatalf("tag = %+v", tag)
	}
}

func TestAddPostTagDuplicateConflicts(t *testing.T) {
	f := newTagFixture(t)
	f.ownedPost(repository.PostKindRegular)
	f.tags.EXPECT().GetByID(gomock.Any(), testTagID).
		Return(&models.Tag{ID: testTagID, ClientID: testClientID}, nil)
	f.postTags.EXPECT().Exists(gomock.Any(), testPostID, testTagID).Return(true, nil)
	f.postTags.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.AddPostTag(context.Background(), testUserID, testPostID, testTagID)
	if !apperror.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if apperror.GetMessage(err) != "Tag already added to this post" {
		t.Fatalf("message = %q", apperror.GetMessage(err))
	}
}

func TestAddPostTagRejects(t *testing.T) {
	tests := []struct {
		name  string
		tagID string
		setup func(f *tagFixture)
		check func(error) bool
	}{
		{
			name:  "bad tag id",
			tagID: "not-a-uuid",
			setup: func(f *tagFixture) {},
			check: apperror.IsBadRequest,
		},
		{
			name:  "post missing",
			tagID: testTagID,
			setup: func(f *tagFixture) {
				f.resolver.EXPECT().Resolve(gomock.Any(), testPostID).Return(nil, nil)
			},
			check: apperror.IsNotFound,
		},
		{
			name:  "client missing",
			tagID: testTagID,
			setup: func(f *tagFixture) {
				f.resolver.EXPECT().Resolve(gomock.Any(), testPostID).
					Return(&repository.ResolvedPost{ID: testPostID, ClientID: testClientID}, nil)
				f.clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(nil, nil)
			},
			check: apperror.IsNotFound,
		},
		{
			name:  "not owner",
			tagID: testTagID,
			setup: func(f *tagFixture) {
				f.resolver.EXPECT().Resolve(gomock.Any(), testPostID).
					Return(&repository.ResolvedPost{ID: testPostID, ClientID: testClientID}, nil)
				f.clients.EXPECT().GetByID(gomock.Any(), testClientID).
					Return(&models.Client{ID: testClientID, UserID: "someone-else"}, nil)
			},
			check: apperror.IsForbidden,
		},
		{
			name:  "tag missing",
			tagID: testTagID,
			setup: func(f *tagFixture) {
				f.ownedPost(repository.PostKindCalendar)
				f.tags.EXPECT().GetByID(gomock.Any(), testTagID).Return(nil, nil)
			},
			check: apperror.IsNotFound,
		},
		{
			name:  "tag of another client",
			tagID: testTagID,
			setup: func(f *tagFixture) {
				f.ownedPost(repository.PostKindCalendar)
				f.tags.EXPECT().GetByID(gomock.Any(), testTagID).
					Return(&models.Tag{ID: testTagID, ClientID: "other-client"}, nil)
			},
			check: apperror.IsForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTagFixture(t)
			tt.setup(f)

			_, err := f.svc.AddPostTag(context.Background(), testUserID, testPostID, tt.tagID)
			if !tt.check(err) {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestListPostTagsForbiddenReturnsNothing(t *testing.T) {
	f := newTagFixture(t)
	f.resolver.EXPECT().Resolve(gomock.Any(), testPostID).
		Return(&repository.ResolvedPost{ID: testPostID, ClientID: testClientID}, nil)
	f.clients.EXPECT().GetByID(gomock.Any(), testClientID).
		Return(&models.Client{ID: testClientID, UserID: "someone-else"}, nil)
	f.postTags.EXPECT().ListTags(gomock.Any(), gomock.Any()).Times(0)

	tags, err := f.svc.ListPostTags(context.Background(), testUserID, testPostID)
	if !apperror.IsForbidden(err) || tags != nil {
		t.Fatalf("tags = %v err = %v", tags, err)
	}
}

func TestRemovePostTagWrapsStorageErrors(t *testing.T) {
	f := newTagFixture(t)
	f.ownedPost(repository.PostKindRegular)
	dbErr := errors.New("connection reset")
	f.postTags.EXPECT().Remove(gomock.Any(), testPostID, testTagID).Return(dbErr)

	err := f.svc.RemovePostTag(context.Background(), testUserID, testPostID, testTagID)
	if !errors.Is(err, dbErr) {
		t.Fatalf("err = %v", err)
	}
}
