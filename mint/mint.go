// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/trsledger/fault"
)

//go:generate mockgen -source=mint.go -destination=../mocks/mint.go -package=mocks
//go:generate mockgen -source=issue.go -destination=../mocks/issue.go -package=mocks

// Configuration - external minting program from the configuration file
type Configuration struct {
	Program   string   `gluamapper:"program" json:"program"`
	Arguments []string `gluamapper:"arguments" json:"arguments"`
}

// Request - what to mint
type Request struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Creator     string `json:"creator"`
}

// Result - on-chain addresses of a completed mint
type Result struct {
	MintAddress         string `json:"mintAddress"`
	TokenAccountAddress string `json:"tokenAccountAddress"`
}

// Minter - creates the on-chain token for a new collection
type Minter interface {
	Mint(ctx context.Context, request Request) (Result, error)
}

// ScriptMinter - runs an external program that prints the Result as JSON
type ScriptMinter struct {
	log       *logger.L
	program   string
	arguments []string
}

// NewScriptMinter - minter for the configured program
func NewScriptMinter(configuration Configuration) (*ScriptMinter, error) {
	if "" == configuration.Program {
		return nil, fault.ErrMissingParameters
	}
	return &ScriptMinter{
		log:       logger.New("mint"),
		program:   configuration.Program,
		arguments: configuration.Arguments,
	}, nil
}

// Mint - the program gets the configured arguments followed by
// title, description, count and creator
func (m *ScriptMinter) Mint(ctx context.Context, request Request) (Result, error) {
	log := m.log

	args := make([]string, 0, len(m.arguments)+4)
	args = append(args, m.arguments...)
	args = append(args, request.Title, request.Description, strconv.Itoa(request.Count), request.Creator)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Infof("minting: %q  count: %d  creator: %q", request.Title, request.Count, request.Creator)
	if err := cmd.Run(); nil != err {
		log.Errorf("mint: %q  error: %s  stderr: %s", request.Title, err, strings.TrimSpace(stderr.String()))
		return Result{}, fault.ErrMintFailed
	}

	var result Result
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &result); nil != err {
		log.Errorf("mint: %q  invalid output: %q  error: %s", request.Title, stdout.String(), err)
		return Result{}, fault.ErrMintFailed
	}
	if "" == result.MintAddress {
		log.Errorf("mint: %q  no mint address in: %q", request.Title, stdout.String())
		return Result{}, fault.ErrMintFailed
	}

	log.Infof("minted: %q  mint address: %s  token account: %s", request.Title, result.MintAddress, result.TokenAccountAddress)
	return result, nil
}
