package employee

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKeyPrefix = "employees:options:"
	employeeOptionsTTL       = 15 * time.Minute
)

// GetEmployeeOptionsKey builds a cache key that is identical for equivalent filters.
func GetEmployeeOptionsKey(filter Filter) string {
	codes := append([]string(nil), filter.Codes...)
	depts := append([]string(nil), filter.Departments...)
	sort.Strings(codes)
	sort.Strings(depts)

	return EmployeeOptionsKeyPrefix +
		strings.Join(codes, ",") + "|" +
		strings.Join(depts, ",") + "|" +
		strings.ToLower(strings.TrimSpace(filter.SearchTerm))
}

type Service interface {
	Search(ctx context.Context, filter Filter) ([]EmployeeOptionResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Search(ctx context.Context, filter Filter) ([]EmployeeOptionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	cacheKey := GetEmployeeOptionsKey(filter)
	log.Debug("search employees requested",
		zap.Int("codes", len(filter.Codes)),
		zap.Strings("departments", filter.Departments),
		zap.String("search", filter.SearchTerm),
	)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("search employees cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// the picker fires the same query for every keystroke burst; collapse them
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindActive(ctx, filter)
		if err != nil {
			return nil, MapRepositoryError(err)
		}

		resp := mapToOptionResponses(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, employeeOptionsTTL).Err(); err != nil {
					log.Warn("search employees cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		log.Error("search employees failed", zap.Error(err))
		return nil, err
	}

	resp := v.([]EmployeeOptionResponse)
	log.Info("search employees success", zap.Int("count", len(resp)))
	return resp, nil
}

func mapToOptionResponse(e Employee) EmployeeOptionResponse {
	return EmployeeOptionResponse{
		Code:       e.Code,
		Name:       e.Name,
		EmployeeID: e.WarehouseID,
		Department: e.Department,
		JobTitle:   e.Designation,
	}
}

func mapToOptionResponses(emps []Employee) []EmployeeOptionResponse {
	res := make([]EmployeeOptionResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToOptionResponse(e)
	}
	return res
}
