// Copyright 2023 TiKV Project Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"github.com/tikv/splay/pkg/splay"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "splay-demo",
		Short:        "exercise the splay tree with a scripted workload",
		RunE:         runDemo,
		SilenceUsage: true,
	}
	rootCmd.Flags().IntSlice("keys", []int{7, 3, 11, 1, 5, 9, 13, 0, 2, 4, 6, 8, 10, 12, 14},
		"keys to insert, in order; each node's value is its insertion index")
	rootCmd.Flags().IntSlice("lookups", []int{2, 0, 8, 13, 5},
		"keys to look up, before and after removing the root")

	rootCmd.SetOutput(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.Println(err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	keys, err := cmd.Flags().GetIntSlice("keys")
	if err != nil {
		return errors.Trace(err)
	}
	lookups, err := cmd.Flags().GetIntSlice("lookups")
	if err != nil {
		return errors.Trace(err)
	}
	if len(keys) == 0 {
		return errors.New("at least one key is required")
	}

	tree := splay.NewSplayTree[int, int]()
	for i, k := range keys {
		tree.Add(k, i)
	}
	log.Info("tree loaded", zap.Int("size", tree.Len()))
	tree.Fprint(os.Stdout)

	runLookups(tree, lookups)

	// drop whatever the lookups left on top and probe again
	if rootKey, ok := tree.RootKey(); ok {
		value, _ := tree.Delete(rootKey)
		log.Info("root removed",
			zap.Int("key", rootKey),
			zap.Int("value", value),
			zap.Int("size", tree.Len()))
		tree.Fprint(os.Stdout)
		runLookups(tree, lookups)
	}

	log.Info("teardown", zap.Int("released", tree.Clear()))
	return nil
}

func runLookups(tree *splay.SplayTree[int, int], lookups []int) {
	for _, k := range lookups {
		if v, ok := tree.Get(k); ok {
			log.Info("found", zap.Int("key", k), zap.Int("value", v))
		} else {
			log.Info("not found", zap.Int("key", k))
		}
		tree.Fprint(os.Stdout)
	}
}
