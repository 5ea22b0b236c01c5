package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/engagement-pulse/internal/app"
	"github.com/MKhiriev/engagement-pulse/internal/auth"
)

func newLoginCmd(getDeps func() *deps) *cobra.Command {
	var (
		credential string
		verify     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a Google ID token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := getDeps()

			exchange := d.auth.LoginWithGoogle
			if verify {
				exchange = d.auth.Verify
			}

			cred, err := exchange(cmd.Context(), credential)
			if err != nil {
				return err
			}
			fmt.Fprintf(d.out, "Signed in as %s\n", titleStyle.Render(cred.User.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&credential, "credential", "", "Google ID token from the sign-in flow")
	cmd.Flags().BoolVar(&verify, "verify", false, "Use the verify endpoint instead of the login endpoint")
	_ = cmd.MarkFlagRequired("credential")
	return cmd
}

func newLogoutCmd(getDeps func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := getDeps()
			if err := d.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(d.out, "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(getDeps func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := getDeps()
			id, err := d.auth.Whoami(cmd.Context())
			if errors.Is(err, auth.ErrNotSignedIn) {
				return fmt.Errorf("%s, %s", app.MsgNotSignedIn, app.MsgLoginHint)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(d.out, renderIdentity(id))
			return nil
		},
	}
}
