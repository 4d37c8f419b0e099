// Package errors provides the error taxonomy for the on-prem Go SDK.
//
// Every error returned by the SDK falls in one of these classes:
//
//   - BadParameterError: a required argument was empty or a client-checkable
//     constraint failed (page length, missing id and name). Raised before
//     any network call.
//   - ValidationError: a closed-set value (enum) was outside its set.
//   - NotFoundError: the server reported that no entity matched.
//   - APIError: any other server-reported GraphQL error.
//   - TransportError: network failure or malformed response.
//   - UploadError: the blob store rejected an out-of-band PUT or GET.
//
// All of them implement OnpremError:
//
//	var sdkErr errors.OnpremError
//	if stdErrors.As(err, &sdkErr) {
//	    log.Printf("error code: %s", sdkErr.Code())
//	}
//
// Use errors.Is with the sentinels for class checks:
//
//	if stdErrors.Is(err, errors.ErrNotFound) {
//	    // create instead
//	}
package errors
