// Package apiclient is the single gateway from the admin panel to the
// contacts backend.
//
// Every call goes through Client.Do, which joins the path onto the
// configured base URL, sends JSON (or a MultipartBody untouched), attaches
// the session token carried by the context as a bearer Authorization header
// and decodes the response.
//
// Any failure (transport error, non-2xx status, undecodable body) comes
// back as a *RequestError that matches ErrRequestFailed with errors.Is, so
// screens can show one generic message without looking at transport
// details. The client never redirects and never touches the session.
package apiclient
