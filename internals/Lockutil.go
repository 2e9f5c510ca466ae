/*
 * Copyright (c) 2020-2024. Devtron Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internals

import (
	"go.uber.org/zap"
	"sync"
)

// RepositoryLocker hands out one mutex per repository path. Leases are reference counted and the
// lock is dropped from the bank once the last holder returns it.
type RepositoryLocker struct {
	logger *zap.SugaredLogger
	Mutex  sync.Mutex
	Bank   map[string]*RepositoryLock
}

func NewRepositoryLocker(logger *zap.SugaredLogger) *RepositoryLocker {
	return &RepositoryLocker{
		logger: logger,
		Bank:   map[string]*RepositoryLock{},
	}
}

func (locker *RepositoryLocker) LeaseLocker(repositoryPath string) *RepositoryLock {
	locker.logger.Debugw("lease req get for ", "repo", repositoryPath)
	locker.Mutex.Lock()
	defer locker.Mutex.Unlock()
	repositoryLock := locker.Bank[repositoryPath]
	if repositoryLock == nil {
		repositoryLock = &RepositoryLock{}
		locker.Bank[repositoryPath] = repositoryLock
	}
	repositoryLock.counter = repositoryLock.counter + 1
	return repositoryLock
}

func (locker *RepositoryLocker) ReturnLocker(repositoryPath string) {
	locker.logger.Debugw("lease req release for ", "repo", repositoryPath)
	locker.Mutex.Lock()
	defer locker.Mutex.Unlock()
	repositoryLock := locker.Bank[repositoryPath]
	if repositoryLock == nil {
		return
	}
	repositoryLock.counter = repositoryLock.counter - 1
	if repositoryLock.counter == 0 {
		delete(locker.Bank, repositoryPath)
	}
}

// WithRepositoryLock runs fn while holding the lock of repositoryPath.
func (locker *RepositoryLocker) WithRepositoryLock(repositoryPath string, fn func() error) error {
	lock := locker.LeaseLocker(repositoryPath)
	defer locker.ReturnLocker(repositoryPath)
	lock.Mutex.Lock()
	defer lock.Mutex.Unlock()
	return fn()
}

type RepositoryLock struct {
	Mutex   sync.Mutex
	counter int
}
