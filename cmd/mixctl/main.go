package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"log"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vx-labs/mix-engine/mixer/pb"
	"google.golang.org/grpc"
)

type APIWrapper struct {
	api *pb.Client
}

func (a *APIWrapper) API() *pb.Client {
	return a.api
}

func main() {
	helper := &APIWrapper{}
	var conn *grpc.ClientConn
	var err error
	ctx := context.Background()
	root := &cobra.Command{
		Use: "mixctl",
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if conn != nil {
				conn.Close()
			}
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			endpoint := viper.GetString("endpoint")
			conn, err = grpc.Dial(endpoint,
				grpc.WithInsecure(),
				grpc.WithTimeout(3*time.Second))
			if err != nil {
				log.Fatalf("FATAL: failed to dial %s: %v", endpoint, err)
			}
			helper.api = pb.NewClient(conn)
		},
	}
	root.PersistentFlags().StringP("endpoint", "e", "localhost:4001", "Mix GRPC endpoint")
	viper.BindPFlag("endpoint", root.PersistentFlags().Lookup("endpoint"))

	root.AddCommand(&cobra.Command{
		Use:   "mix",
		Short: "Force a mix cycle on the target node",
		Run: func(cmd *cobra.Command, args []string) {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Force a mix on %s", viper.GetString("endpoint")),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				log.Println("aborted")
				return
			}
			ok, err := helper.API().DoMix(ctx)
			if err != nil {
				log.Fatalf("FATAL: do_mix failed: %v", err)
			}
			if ok {
				fmt.Println("mix cycle completed")
			} else {
				fmt.Println("mix cycle failed, check the node's logs")
			}
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "argument",
		Short: "Fetch the node's current pull argument",
		Run: func(cmd *cobra.Command, args []string) {
			argument, err := helper.API().GetPullArgument(ctx)
			if err != nil {
				log.Fatalf("FATAL: get_pull_argument failed: %v", err)
			}
			fmt.Printf("%d bytes\n", len(argument))
			fmt.Println(base64.StdEncoding.EncodeToString(argument))
		},
	})
	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Push a diff payload file into the target node",
		Run: func(cmd *cobra.Command, args []string) {
			payload, err := ioutil.ReadFile(viper.GetString("file"))
			if err != nil {
				log.Fatalf("FATAL: failed to read payload: %v", err)
			}
			if err := helper.API().Push(ctx, payload); err != nil {
				log.Fatalf("FATAL: push failed: %v", err)
			}
			fmt.Println("diff applied")
		},
	}
	pushCmd.Flags().StringP("file", "f", "", "Diff payload file")
	viper.BindPFlag("file", pushCmd.Flags().Lookup("file"))
	root.AddCommand(pushCmd)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
