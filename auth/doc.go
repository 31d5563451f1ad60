// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Password Hashing

Passwords are stored as bcrypt hashes only:

	hash, err := auth.HashPassword(password)
	err = auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch so callers never learn
whether the email or the password was wrong.

# Session Tokens

Session tokens are HS256-signed JWTs with the user ID as subject:

	token, err := auth.MintSessionToken(userID, secret, 24*time.Hour)
	userID, err := auth.ParseSessionToken(token, secret)

Tokens carry issuer "alx-polly" and an expiry; ParseSessionToken rejects
expired tokens, foreign issuers, and any non-HMAC signing method. Because
tokens are stateless, sign-out is the client discarding its token.

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()
*/
package auth
