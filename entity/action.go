// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package entity

// ActionData the action witness selecting the transition being performed.
// The action name is an arbitrary byte string; dispatchers compare it
// literally.
type ActionData struct {
	Action []byte
	Params []byte
}

// DecodeActionData decodes the canonical encoding of ActionData.
func DecodeActionData(b []byte) (*ActionData, error) {
	var a ActionData
	if err := decode(b, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
