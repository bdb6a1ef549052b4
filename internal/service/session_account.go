// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/parser"
	"github.com/MKhiriev/acgs-launcher/internal/process"
	"github.com/MKhiriev/acgs-launcher/internal/store"
	"github.com/MKhiriev/acgs-launcher/models"
	"golang.org/x/sync/semaphore"
)

// CustomServersKey is the preference key holding the user's servers as JSON.
const CustomServersKey = "custom_servers"

// rosterPolicies declares how each successful operation updates the cached
// roster. Select and delete patch it in place and may diverge from the core
// until the next listing.
var rosterPolicies = map[models.AccountOperation]models.RosterPolicy{
	models.OperationList:    models.RosterReplace,
	models.OperationRefresh: models.RosterRefetch,
	models.OperationLogin:   models.RosterRefetch,
	models.OperationSelect:  models.RosterPatchSelect,
	models.OperationDelete:  models.RosterPatchRemove,
}

func listArgs() []string { return []string{"account", "--list"} }

func selectArgs(id int) []string { return []string{"account", "-s", strconv.Itoa(id)} }

func deleteArgs(id int) []string { return []string{"account", "--delete", strconv.Itoa(id)} }

func refreshArgs() []string { return []string{"account", "--refresh"} }

func loginArgs(address string) []string {
	return []string{"account", "--login=authlib", "--address=" + address, "-s"}
}

type accountCall struct {
	op     models.AccountOperation
	args   []string
	stdin  []string
	target int
}

type accountSession struct {
	tool  process.ToolRunner
	core  process.CoreLocator
	prefs store.PreferenceRepository

	sem *semaphore.Weighted

	mu      sync.RWMutex
	roster  []models.Account
	custom  []models.ExternalServer
	lastErr string
	loading bool

	logger *logger.Logger
}

// NewAccountSession creates an [AccountSession] and loads the custom server
// list from prefs. An unreadable list is logged and treated as empty.
func NewAccountSession(ctx context.Context, tool process.ToolRunner, core process.CoreLocator, prefs store.PreferenceRepository, log *logger.Logger) AccountSession {
	s := &accountSession{
		tool:   tool,
		core:   core,
		prefs:  prefs,
		sem:    semaphore.NewWeighted(1),
		logger: log.WithComponent("accounts"),
	}
	s.custom = s.loadCustomServers(ctx)
	return s
}

func (s *accountSession) ListAccounts(ctx context.Context) error {
	return s.run(ctx, "accountSession.ListAccounts", accountCall{op: models.OperationList, args: listArgs()})
}

func (s *accountSession) SelectAccount(ctx context.Context, id int) error {
	return s.run(ctx, "accountSession.SelectAccount", accountCall{op: models.OperationSelect, args: selectArgs(id), target: id})
}

func (s *accountSession) DeleteAccount(ctx context.Context, id int) error {
	return s.run(ctx, "accountSession.DeleteAccount", accountCall{op: models.OperationDelete, args: deleteArgs(id), target: id})
}

func (s *accountSession) RefreshCurrent(ctx context.Context) error {
	return s.run(ctx, "accountSession.RefreshCurrent", accountCall{op: models.OperationRefresh, args: refreshArgs()})
}

func (s *accountSession) LoginExternal(ctx context.Context, serverAddress, username, password string) error {
	serverAddress = strings.TrimSpace(serverAddress)
	if status := s.core.CoreStatus(); !status.Exists {
		s.logger.Warn().Str("func", "accountSession.LoginExternal").Str("path", status.Path).Msg("core is missing")
		return s.fail(ErrCoreMissing)
	}
	if !s.knownServer(serverAddress) {
		s.logger.Warn().Str("func", "accountSession.LoginExternal").Str("address", serverAddress).Msg("login to unknown server rejected")
		return s.fail(fmt.Errorf("%w: %s", ErrUnsupportedServer, serverAddress))
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return s.fail(ErrMissingCredentials)
	}

	return s.run(ctx, "accountSession.LoginExternal", accountCall{
		op:    models.OperationLogin,
		args:  loginArgs(serverAddress),
		stdin: []string{username, password},
	})
}

// run executes one roster operation end to end. The roster is only touched
// after the core reported success.
func (s *accountSession) run(ctx context.Context, fn string, call accountCall) error {
	if !s.sem.TryAcquire(1) {
		return ErrBusy
	}
	defer s.sem.Release(1)

	s.setLoading(true)
	defer s.setLoading(false)

	if status := s.core.CoreStatus(); !status.Exists {
		s.logger.Warn().Str("func", fn).Str("path", status.Path).Msg("core is missing")
		return s.fail(ErrCoreMissing)
	}

	if call.op == models.OperationSelect || call.op == models.OperationDelete {
		if !s.hasAccount(call.target) {
			s.logger.Warn().Str("func", fn).Int("id", call.target).Msg("account is not in the roster")
			return s.fail(fmt.Errorf("%w: %d", ErrAccountNotFound, call.target))
		}
	}

	output, err := s.invoke(ctx, fn, call.args, call.stdin)
	if err != nil {
		return s.fail(err)
	}

	switch rosterPolicies[call.op] {
	case models.RosterReplace:
		s.replaceRoster(parser.Parse(output))
	case models.RosterRefetch:
		listed, err := s.invoke(ctx, fn, listArgs(), nil)
		if err != nil {
			return s.fail(err)
		}
		s.replaceRoster(parser.Parse(listed))
	case models.RosterPatchSelect:
		s.patchSelect(call.target)
	case models.RosterPatchRemove:
		s.patchRemove(call.target)
	}

	s.ClearError()
	s.logger.Debug().Str("func", fn).Stringer("policy", rosterPolicies[call.op]).Int("accounts", len(s.Accounts())).Msg("roster updated")
	return nil
}

func (s *accountSession) invoke(ctx context.Context, fn string, args, stdin []string) (string, error) {
	var (
		result models.CommandResult
		err    error
	)
	if stdin != nil {
		result, err = s.tool.RunToolInteractive(ctx, args, stdin)
	} else {
		result, err = s.tool.RunTool(ctx, args)
	}
	if err != nil {
		s.logger.Err(err).Str("func", fn).Strs("args", args).Msg("error running core")
		return "", err
	}
	if !result.Success {
		s.logger.Warn().Str("func", fn).Strs("args", args).Str("error", result.FailureMessage()).Msg("core command failed")
		return "", fmt.Errorf("%w: %s", ErrExternalCommandFailed, result.FailureMessage())
	}
	return result.Output, nil
}

func (s *accountSession) AddCustomServer(ctx context.Context, name, address string) error {
	name = strings.TrimSpace(name)
	address = normalizeAddress(address)
	if name == "" || address == "" {
		return s.fail(ErrInvalidServer)
	}

	if s.knownServer(address) {
		s.logger.Info().Str("func", "accountSession.AddCustomServer").Str("address", address).Msg("server address is already listed")
	}

	s.mu.RLock()
	next := append(slices.Clone(s.custom), models.ExternalServer{Name: name, Address: address})
	s.mu.RUnlock()

	if err := s.saveCustomServers(ctx, next); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.custom = next
	s.mu.Unlock()
	s.ClearError()
	return nil
}

func (s *accountSession) RemoveCustomServer(ctx context.Context, address string) error {
	address = normalizeAddress(address)

	s.mu.RLock()
	next := slices.DeleteFunc(slices.Clone(s.custom), func(srv models.ExternalServer) bool { return srv.Address == address })
	removed := len(next) != len(s.custom)
	s.mu.RUnlock()

	// Custom entries may shadow a built-in address; only those are removable.
	if !removed {
		if slices.ContainsFunc(models.BuiltInServers(), func(srv models.ExternalServer) bool { return srv.Address == address }) {
			return s.fail(ErrBuiltInServer)
		}
		return s.fail(fmt.Errorf("%w: %s", ErrServerNotFound, address))
	}

	if err := s.saveCustomServers(ctx, next); err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.custom = next
	s.mu.Unlock()
	s.ClearError()
	return nil
}

func (s *accountSession) loadCustomServers(ctx context.Context) []models.ExternalServer {
	raw, err := s.prefs.Get(ctx, CustomServersKey)
	if err != nil {
		if !errors.Is(err, store.ErrPreferenceNotFound) {
			s.logger.Err(err).Str("func", "accountSession.loadCustomServers").Msg("error reading custom servers")
		}
		return nil
	}

	var servers []models.ExternalServer
	if err = json.Unmarshal([]byte(raw), &servers); err != nil {
		s.logger.Err(err).Str("func", "accountSession.loadCustomServers").Msg("error decoding custom servers")
		return nil
	}

	return slices.DeleteFunc(servers, func(srv models.ExternalServer) bool {
		return strings.TrimSpace(srv.Name) == "" || strings.TrimSpace(srv.Address) == ""
	})
}

func (s *accountSession) saveCustomServers(ctx context.Context, servers []models.ExternalServer) error {
	if len(servers) == 0 {
		if err := s.prefs.Delete(ctx, CustomServersKey); err != nil {
			s.logger.Err(err).Str("func", "accountSession.saveCustomServers").Msg("error clearing custom servers")
			return fmt.Errorf("%w: %v", ErrSavingServers, err)
		}
		return nil
	}
	raw, err := json.Marshal(servers)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSavingServers, err)
	}
	if err = s.prefs.Set(ctx, CustomServersKey, string(raw)); err != nil {
		s.logger.Err(err).Str("func", "accountSession.saveCustomServers").Msg("error saving custom servers")
		return fmt.Errorf("%w: %v", ErrSavingServers, err)
	}
	return nil
}

func (s *accountSession) Accounts() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.roster)
}

func (s *accountSession) SelectedAccount() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.roster {
		if a.Selected {
			return a, true
		}
	}
	return models.Account{}, false
}

func (s *accountSession) AvailableServers() []models.ExternalServer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(models.BuiltInServers(), s.custom...)
}

func (s *accountSession) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *accountSession) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *accountSession) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *accountSession) fail(err error) error {
	s.mu.Lock()
	s.lastErr = UserMessage(err)
	s.mu.Unlock()
	return err
}

func (s *accountSession) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *accountSession) knownServer(address string) bool {
	if address == "" {
		return false
	}
	return slices.ContainsFunc(s.AvailableServers(), func(srv models.ExternalServer) bool {
		return srv.Address == address
	})
}

func (s *accountSession) hasAccount(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.roster, func(a models.Account) bool { return a.ID == id })
}

func (s *accountSession) replaceRoster(accounts []models.Account) {
	s.mu.Lock()
	s.roster = accounts
	s.mu.Unlock()
}

func (s *accountSession) patchSelect(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.roster {
		s.roster[i].Selected = s.roster[i].ID == id
	}
}

func (s *accountSession) patchRemove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = slices.DeleteFunc(s.roster, func(a models.Account) bool { return a.ID == id })
}

// normalizeAddress reduces user input such as "https://host/" to "host".
func normalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	address = strings.TrimPrefix(address, "https://")
	address = strings.TrimPrefix(address, "http://")
	return strings.TrimRight(address, "/")
}
