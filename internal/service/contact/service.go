// Package contact manages a user's contact list and user search.
package contact

import (
	"context"
	"strings"
	"time"

	"vidcall_server/internal/dao/mysql/repository"
	myredis "vidcall_server/internal/dao/redis"
	"vidcall_server/internal/dto/request"
	"vidcall_server/internal/dto/respond"
	"vidcall_server/internal/model"
	"vidcall_server/internal/service/calling"
	"vidcall_server/pkg/constants"
	"vidcall_server/pkg/errorx"

	"go.uber.org/zap"
)

// contactService contact business logic
type contactService struct {
	repos  *repository.Repositories
	cache  myredis.AsyncCacheService
	caller calling.Initiator
}

// NewContactService constructor
func NewContactService(repos *repository.Repositories, cache myredis.AsyncCacheService, caller calling.Initiator) *contactService {
	return &contactService{repos: repos, cache: cache, caller: caller}
}

func contactIDsKey(userID string) string {
	return constants.CONTACT_IDS_PREFIX + userID
}

func contactVersionKey(userID string) string {
	return constants.CONTACT_VER_PREFIX + userID
}

// List returns the user's contacts in the order they were added.
func (s *contactService) List(ctx context.Context, userID string) ([]respond.ContactRespond, error) {
	contacts, err := s.repos.Contact.ListWithProfiles(ctx, userID)
	if err != nil {
		zap.L().Error("list contacts failed", zap.String("user_id", userID), zap.Error(err))
		return nil, errorx.New(errorx.CodeServerBusy, "Failed to load contacts")
	}

	rsp := make([]respond.ContactRespond, 0, len(contacts))
	for _, c := range contacts {
		if c.Profile == nil {
			continue
		}
		rsp = append(rsp, respond.ContactRespond{
			ID:        c.Profile.ID,
			Username:  c.Profile.Username,
			Status:    c.Profile.Status,
			AvatarURL: c.Profile.AvatarURL,
		})
	}
	return rsp, nil
}

// Search finds up to SEARCH_LIMIT other users whose name contains query.
// A blank query returns nothing without touching the store.
func (s *contactService) Search(ctx context.Context, userID, query string) ([]respond.SearchUserRespond, error) {
	if strings.TrimSpace(query) == "" {
		return []respond.SearchUserRespond{}, nil
	}

	profiles, err := s.repos.Profile.SearchByUsername(ctx, query, userID, constants.SEARCH_LIMIT)
	if err != nil {
		zap.L().Error("search profiles failed", zap.String("query", query), zap.Error(err))
		return nil, errorx.New(errorx.CodeServerBusy, "Search failed")
	}

	known := s.contactIDs(ctx, userID)
	rsp := make([]respond.SearchUserRespond, 0, len(profiles))
	for _, p := range profiles {
		_, isContact := known[p.ID]
		rsp = append(rsp, respond.SearchUserRespond{
			ID:        p.ID,
			Username:  p.Username,
			Status:    p.Status,
			AvatarURL: p.AvatarURL,
			IsContact: isContact,
		})
	}
	return rsp, nil
}

// contactIDs reads the cached id set, falling back to the database and
// repopulating the cache in the background. The write-back only lands if no
// add bumped the version since the database read. Failures yield an empty set.
func (s *contactService) contactIDs(ctx context.Context, userID string) map[string]struct{} {
	key := contactIDsKey(userID)
	ids, err := s.cache.GetSetMembers(ctx, key)
	if err != nil {
		zap.L().Warn("read contact id cache failed", zap.String("user_id", userID), zap.Error(err))
	}

	if len(ids) == 0 {
		version, verErr := s.cache.Get(ctx, contactVersionKey(userID))
		if verErr != nil {
			zap.L().Warn("read contact cache version failed", zap.String("user_id", userID), zap.Error(verErr))
		}
		ids, err = s.repos.Contact.ListContactIDs(ctx, userID)
		if err != nil {
			zap.L().Error("list contact ids failed", zap.String("user_id", userID), zap.Error(err))
			return map[string]struct{}{}
		}
		if len(ids) > 0 && verErr == nil {
			members := append([]string(nil), ids...)
			s.cache.SubmitTask(func() {
				written, err := s.cache.AddToSetIfUnchanged(context.Background(), key, contactVersionKey(userID),
					version, constants.REDIS_TIMEOUT*time.Minute, members...)
				if err != nil {
					zap.L().Warn("write contact id cache failed", zap.String("user_id", userID), zap.Error(err))
					return
				}
				if !written {
					zap.L().Debug("contact id cache write skipped, list changed", zap.String("user_id", userID))
				}
			})
		}
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add links contactID to the user's list. Every failure surfaces as the
// same message.
func (s *contactService) Add(ctx context.Context, userID, contactID string) error {
	failed := errorx.New(errorx.CodeServerBusy, "Failed to add contact")
	if contactID == "" || contactID == userID {
		return failed
	}
	if _, err := s.repos.Profile.FindByID(ctx, contactID); err != nil {
		zap.L().Warn("add contact: target not found", zap.String("contact_id", contactID), zap.Error(err))
		return failed
	}
	if err := s.repos.Contact.Create(ctx, &model.Contact{UserID: userID, ContactID: contactID}); err != nil {
		zap.L().Warn("add contact failed",
			zap.String("user_id", userID),
			zap.String("contact_id", contactID),
			zap.Error(err))
		return failed
	}

	if _, err := s.cache.Incr(ctx, contactVersionKey(userID)); err != nil {
		zap.L().Error("bump contact cache version failed", zap.String("user_id", userID), zap.Error(err))
	}
	if err := s.cache.Delete(ctx, contactIDsKey(userID)); err != nil {
		zap.L().Error("invalidate contact id cache failed", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

// InitiateCall hands a one-to-one call to the calling boundary.
func (s *contactService) InitiateCall(ctx context.Context, userID string, req request.InitiateCallRequest) error {
	return s.caller.StartCall(ctx, calling.Request{
		CallerID: userID,
		CalleeID: req.ContactID,
		Type:     model.CallType(req.CallType),
	})
}
