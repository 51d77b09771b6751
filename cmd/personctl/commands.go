package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/personpb"
)

type connOptions struct {
	addr    string
	useTLS  bool
	caFile  string
	timeout time.Duration
}

type dialFunc func(opts connOptions) (grpc.ClientConnInterface, io.Closer, error)

func dialServer(opts connOptions) (grpc.ClientConnInterface, io.Closer, error) {
	creds := insecure.NewCredentials()
	if opts.useTLS {
		c, err := credentials.NewClientTLSFromFile(opts.caFile, "")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load CA file: %w", err)
		}
		creds = c
	}

	conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}
	return conn, conn, nil
}

type formFlags struct {
	first, last, age          string
	newFirst, newLast, newAge string
}

func (f *formFlags) bindCriteria(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.first, "first", "", "First name")
	cmd.Flags().StringVar(&f.last, "last", "", "Last name")
	cmd.Flags().StringVar(&f.age, "age", "", "Age")
}

func (f *formFlags) bindUpdate(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.newFirst, "new-first", "", "New first name")
	cmd.Flags().StringVar(&f.newLast, "new-last", "", "New last name")
	cmd.Flags().StringVar(&f.newAge, "new-age", "", "New age")
}

func (f *formFlags) criteria() map[string]string {
	return map[string]string{
		personpb.FieldFirstName: f.first,
		personpb.FieldLastName:  f.last,
		personpb.FieldAge:       f.age,
	}
}

func newRootCmd(stdout, stderr io.Writer, dial dialFunc) *cobra.Command {
	opts := connOptions{}

	rootCmd := &cobra.Command{
		Use:           "personctl",
		Short:         "Person form client",
		Version:       fmt.Sprintf("%s (%s)", buildVersion, buildCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&opts.addr, "addr", "localhost:50051", "Server address")
	rootCmd.PersistentFlags().BoolVar(&opts.useTLS, "tls", false, "Connect with TLS")
	rootCmd.PersistentFlags().StringVar(&opts.caFile, "ca-file", "cert.pem", "CA certificate used with --tls")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-call timeout")

	// call dials the server, runs fn under the per-call timeout and prints the
	// response notifications to stderr.
	call := func(cmd *cobra.Command, fn func(context.Context, personpb.PersonFormClient) (*structpb.Struct, error)) (*structpb.Struct, error) {
		conn, closer, err := dial(opts)
		if err != nil {
			return nil, err
		}
		defer closer.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		defer cancel()

		resp, err := fn(ctx, personpb.NewPersonFormClient(conn))
		if err != nil {
			msg := err.Error()
			if st, ok := status.FromError(err); ok {
				msg = st.Message()
			}
			fmt.Fprintln(stderr, msg)
			return nil, err
		}
		for _, n := range personpb.Strings(resp, personpb.FieldNotifications) {
			fmt.Fprintln(stderr, n)
		}
		return resp, nil
	}

	var (
		createForm formFlags
		findForm   formFlags
		updateForm formFlags
		deleteForm formFlags
		archive    bool
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new person",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := call(cmd, func(ctx context.Context, c personpb.PersonFormClient) (*structpb.Struct, error) {
				return c.Create(ctx, personpb.Form(createForm.criteria()))
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, personpb.String(resp, personpb.FieldID))
			return nil
		},
	}
	createForm.bindCriteria(createCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored person",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := call(cmd, func(ctx context.Context, c personpb.PersonFormClient) (*structpb.Struct, error) {
				req := &structpb.Struct{Fields: map[string]*structpb.Value{
					personpb.FieldArchive: structpb.NewBoolValue(archive),
				}}
				return c.ListAll(ctx, req)
			})
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, personpb.String(resp, personpb.FieldReport))
			if key := personpb.String(resp, personpb.FieldArchiveKey); key != "" {
				fmt.Fprintf(stderr, "report archived as %s\n", key)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&archive, "archive", false, "Also upload the report to object storage")

	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Print persons exactly matching the given fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := call(cmd, func(ctx context.Context, c personpb.PersonFormClient) (*structpb.Struct, error) {
				return c.Find(ctx, personpb.Form(findForm.criteria()))
			})
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, personpb.String(resp, personpb.FieldReport))
			return nil
		},
	}
	findForm.bindCriteria(findCmd)

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update every person matching the given fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := updateForm.criteria()
			form[personpb.FieldNewFirstName] = updateForm.newFirst
			form[personpb.FieldNewLastName] = updateForm.newLast
			form[personpb.FieldNewAge] = updateForm.newAge

			_, err := call(cmd, func(ctx context.Context, c personpb.PersonFormClient) (*structpb.Struct, error) {
				return c.Update(ctx, personpb.Form(form))
			})
			return err
		},
	}
	updateForm.bindCriteria(updateCmd)
	updateForm.bindUpdate(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete every person matching the given fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := call(cmd, func(ctx context.Context, c personpb.PersonFormClient) (*structpb.Struct, error) {
				return c.Delete(ctx, personpb.Form(deleteForm.criteria()))
			})
			return err
		},
	}
	deleteForm.bindCriteria(deleteCmd)

	rootCmd.AddCommand(createCmd, listCmd, findCmd, updateCmd, deleteCmd)
	return rootCmd
}
